package es

// CreateElasticsearchDomainRequest creates a new domain. DomainName is the
// only required member.
type CreateElasticsearchDomainRequest struct {
	AccessPolicies              *string                        `json:"AccessPolicies,omitempty"`
	AdvancedOptions             map[string]string              `json:"AdvancedOptions,omitempty"`
	AdvancedSecurityOptions     *AdvancedSecurityOptions       `json:"AdvancedSecurityOptions,omitempty"`
	AutoTuneOptions             *AutoTuneOptions               `json:"AutoTuneOptions,omitempty"`
	CognitoOptions              *CognitoOptions                `json:"CognitoOptions,omitempty"`
	DomainEndpointOptions       *DomainEndpointOptions         `json:"DomainEndpointOptions,omitempty"`
	DomainName                  *string                        `json:"DomainName,omitempty"`
	EBSOptions                  *EBSOptions                    `json:"EBSOptions,omitempty"`
	ElasticsearchClusterConfig  *ElasticsearchClusterConfig    `json:"ElasticsearchClusterConfig,omitempty"`
	ElasticsearchVersion        *string                        `json:"ElasticsearchVersion,omitempty"`
	EncryptionAtRestOptions     *EncryptionAtRestOptions       `json:"EncryptionAtRestOptions,omitempty"`
	LogPublishingOptions        map[string]LogPublishingOption `json:"LogPublishingOptions,omitempty"`
	NodeToNodeEncryptionOptions *NodeToNodeEncryptionOptions   `json:"NodeToNodeEncryptionOptions,omitempty"`
	SnapshotOptions             *SnapshotOptions               `json:"SnapshotOptions,omitempty"`
	TagList                     []Tag                          `json:"TagList,omitempty"`
	VPCOptions                  *VPCOptions                    `json:"VPCOptions,omitempty"`
}

type CreateElasticsearchDomainResponse struct {
	DomainStatus *ElasticsearchDomainStatus `json:"DomainStatus,omitempty"`
}

type DeleteElasticsearchDomainRequest struct {
	DomainName *string `json:"DomainName,omitempty"`
}

type DeleteElasticsearchDomainResponse struct {
	DomainStatus *ElasticsearchDomainStatus `json:"DomainStatus,omitempty"`
}

type DescribeElasticsearchDomainRequest struct {
	DomainName *string `json:"DomainName,omitempty"`
}

type DescribeElasticsearchDomainResponse struct {
	DomainStatus *ElasticsearchDomainStatus `json:"DomainStatus,omitempty"`
}

type DescribeElasticsearchDomainsRequest struct {
	DomainNames []string `json:"DomainNames,omitempty"`
}

type DescribeElasticsearchDomainsResponse struct {
	DomainStatusList []ElasticsearchDomainStatus `json:"DomainStatusList"`
}

type DescribeElasticsearchDomainConfigRequest struct {
	DomainName *string `json:"DomainName,omitempty"`
}

type DescribeElasticsearchDomainConfigResponse struct {
	DomainConfig *ElasticsearchDomainConfig `json:"DomainConfig,omitempty"`
}

type ListDomainNamesRequest struct {
	EngineType *string `json:"EngineType,omitempty"`
}

type ListDomainNamesResponse struct {
	DomainNames []DomainInfo `json:"DomainNames"`
}

type ListElasticsearchVersionsRequest struct {
	MaxResults *int32  `json:"MaxResults,omitempty"`
	NextToken  *string `json:"NextToken,omitempty"`
}

type ListElasticsearchVersionsResponse struct {
	ElasticsearchVersions []string `json:"ElasticsearchVersions"`
	NextToken             *string  `json:"NextToken,omitempty"`
}

type GetCompatibleElasticsearchVersionsRequest struct {
	DomainName *string `json:"DomainName,omitempty"`
}

type GetCompatibleElasticsearchVersionsResponse struct {
	CompatibleElasticsearchVersions []CompatibleVersionsMap `json:"CompatibleElasticsearchVersions"`
}

type AddTagsRequest struct {
	ARN     *string `json:"ARN,omitempty"`
	TagList []Tag   `json:"TagList,omitempty"`
}

type AddTagsResponse struct{}

type ListTagsRequest struct {
	ARN *string `json:"ARN,omitempty"`
}

type ListTagsResponse struct {
	TagList []Tag `json:"TagList"`
}

type RemoveTagsRequest struct {
	ARN     *string  `json:"ARN,omitempty"`
	TagKeys []string `json:"TagKeys,omitempty"`
}

type RemoveTagsResponse struct{}
