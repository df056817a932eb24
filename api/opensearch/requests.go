package opensearch

// CreateDomainRequest creates a new domain. DomainName is the only required
// member.
type CreateDomainRequest struct {
	AccessPolicies              *string                        `json:"AccessPolicies,omitempty"`
	AdvancedOptions             map[string]string              `json:"AdvancedOptions,omitempty"`
	AdvancedSecurityOptions     *AdvancedSecurityOptions       `json:"AdvancedSecurityOptions,omitempty"`
	AutoTuneOptions             *AutoTuneOptions               `json:"AutoTuneOptions,omitempty"`
	ClusterConfig               *ClusterConfig                 `json:"ClusterConfig,omitempty"`
	CognitoOptions              *CognitoOptions                `json:"CognitoOptions,omitempty"`
	DomainEndpointOptions       *DomainEndpointOptions         `json:"DomainEndpointOptions,omitempty"`
	DomainName                  *string                        `json:"DomainName,omitempty"`
	EBSOptions                  *EBSOptions                    `json:"EBSOptions,omitempty"`
	EncryptionAtRestOptions     *EncryptionAtRestOptions       `json:"EncryptionAtRestOptions,omitempty"`
	EngineVersion               *string                        `json:"EngineVersion,omitempty"`
	LogPublishingOptions        map[string]LogPublishingOption `json:"LogPublishingOptions,omitempty"`
	NodeToNodeEncryptionOptions *NodeToNodeEncryptionOptions   `json:"NodeToNodeEncryptionOptions,omitempty"`
	SnapshotOptions             *SnapshotOptions               `json:"SnapshotOptions,omitempty"`
	TagList                     []Tag                          `json:"TagList,omitempty"`
	VPCOptions                  *VPCOptions                    `json:"VPCOptions,omitempty"`
}

type CreateDomainResponse struct {
	DomainStatus *DomainStatus `json:"DomainStatus,omitempty"`
}

type DeleteDomainRequest struct {
	DomainName *string `json:"DomainName,omitempty"`
}

type DeleteDomainResponse struct {
	DomainStatus *DomainStatus `json:"DomainStatus,omitempty"`
}

type DescribeDomainRequest struct {
	DomainName *string `json:"DomainName,omitempty"`
}

type DescribeDomainResponse struct {
	DomainStatus *DomainStatus `json:"DomainStatus,omitempty"`
}

type DescribeDomainsRequest struct {
	DomainNames []string `json:"DomainNames,omitempty"`
}

type DescribeDomainsResponse struct {
	DomainStatusList []DomainStatus `json:"DomainStatusList"`
}

type DescribeDomainConfigRequest struct {
	DomainName *string `json:"DomainName,omitempty"`
}

type DescribeDomainConfigResponse struct {
	DomainConfig *DomainConfig `json:"DomainConfig,omitempty"`
}

type ListDomainNamesRequest struct {
	EngineType *string `json:"EngineType,omitempty"`
}

type ListDomainNamesResponse struct {
	DomainNames []DomainInfo `json:"DomainNames"`
}

type ListVersionsRequest struct {
	MaxResults *int32  `json:"MaxResults,omitempty"`
	NextToken  *string `json:"NextToken,omitempty"`
}

type ListVersionsResponse struct {
	NextToken *string  `json:"NextToken,omitempty"`
	Versions  []string `json:"Versions"`
}

type GetCompatibleVersionsRequest struct {
	DomainName *string `json:"DomainName,omitempty"`
}

type GetCompatibleVersionsResponse struct {
	CompatibleVersions []CompatibleVersionsMap `json:"CompatibleVersions"`
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
