// Package es defines the legacy Elasticsearch Service dialect of the
// domain-management API: the request and response shapes served to callers.
// Engine versions appear as bare "<major>.<minor>" strings (or
// "OpenSearch_<version>" once a domain has been upgraded), and instance type
// names carry the "elasticsearch" suffix.
package es

import "github.com/esbridge/esbridge/api/core"

// APIVersion is the wire version prefix of the legacy dialect routes.
const APIVersion = "2015-01-01"

// Option shapes carried verbatim between dialects.
type (
	Tag                         = core.Tag
	DomainInfo                  = core.DomainInfo
	OptionStatus                = core.OptionStatus
	EBSOptions                  = core.EBSOptions
	SnapshotOptions             = core.SnapshotOptions
	VPCOptions                  = core.VPCOptions
	VPCDerivedInfo              = core.VPCDerivedInfo
	CognitoOptions              = core.CognitoOptions
	EncryptionAtRestOptions     = core.EncryptionAtRestOptions
	NodeToNodeEncryptionOptions = core.NodeToNodeEncryptionOptions
	DomainEndpointOptions       = core.DomainEndpointOptions
	MasterUserOptions           = core.MasterUserOptions
	AdvancedSecurityOptions     = core.AdvancedSecurityOptions
	AutoTuneOptions             = core.AutoTuneOptions
	LogPublishingOption         = core.LogPublishingOption
	ServiceSoftwareOptions      = core.ServiceSoftwareOptions
	ColdStorageOptions          = core.ColdStorageOptions
	ZoneAwarenessConfig         = core.ZoneAwarenessConfig
	ChangeProgressDetails       = core.ChangeProgressDetails
)

// Status wrappers carried verbatim between dialects.
type (
	AccessPoliciesStatus              = core.AccessPoliciesStatus
	AdvancedOptionsStatus             = core.AdvancedOptionsStatus
	AdvancedSecurityOptionsStatus     = core.AdvancedSecurityOptionsStatus
	AutoTuneOptionsStatus             = core.AutoTuneOptionsStatus
	CognitoOptionsStatus              = core.CognitoOptionsStatus
	DomainEndpointOptionsStatus       = core.DomainEndpointOptionsStatus
	EBSOptionsStatus                  = core.EBSOptionsStatus
	EncryptionAtRestOptionsStatus     = core.EncryptionAtRestOptionsStatus
	LogPublishingOptionsStatus        = core.LogPublishingOptionsStatus
	NodeToNodeEncryptionOptionsStatus = core.NodeToNodeEncryptionOptionsStatus
	SnapshotOptionsStatus             = core.SnapshotOptionsStatus
	VPCDerivedInfoStatus              = core.VPCDerivedInfoStatus
)

// ElasticsearchClusterConfig describes the node topology of a domain in
// legacy vocabulary: the three instance type fields use names ending in
// "elasticsearch" (for example "m5.large.elasticsearch").
type ElasticsearchClusterConfig struct {
	ColdStorageOptions     *ColdStorageOptions  `json:"ColdStorageOptions,omitempty"`
	DedicatedMasterCount   *int32               `json:"DedicatedMasterCount,omitempty"`
	DedicatedMasterEnabled *bool                `json:"DedicatedMasterEnabled,omitempty"`
	DedicatedMasterType    *string              `json:"DedicatedMasterType,omitempty"`
	InstanceCount          *int32               `json:"InstanceCount,omitempty"`
	InstanceType           *string              `json:"InstanceType,omitempty"`
	WarmCount              *int32               `json:"WarmCount,omitempty"`
	WarmEnabled            *bool                `json:"WarmEnabled,omitempty"`
	WarmType               *string              `json:"WarmType,omitempty"`
	ZoneAwarenessConfig    *ZoneAwarenessConfig `json:"ZoneAwarenessConfig,omitempty"`
	ZoneAwarenessEnabled   *bool                `json:"ZoneAwarenessEnabled,omitempty"`
}

// ElasticsearchDomainStatus is the legacy view of a domain.
type ElasticsearchDomainStatus struct {
	ARN                         *string                        `json:"ARN,omitempty"`
	AccessPolicies              *string                        `json:"AccessPolicies,omitempty"`
	AdvancedOptions             map[string]string              `json:"AdvancedOptions,omitempty"`
	AdvancedSecurityOptions     *AdvancedSecurityOptions       `json:"AdvancedSecurityOptions,omitempty"`
	AutoTuneOptions             *AutoTuneOptions               `json:"AutoTuneOptions,omitempty"`
	ChangeProgressDetails       *ChangeProgressDetails         `json:"ChangeProgressDetails,omitempty"`
	CognitoOptions              *CognitoOptions                `json:"CognitoOptions,omitempty"`
	Created                     *bool                          `json:"Created,omitempty"`
	Deleted                     *bool                          `json:"Deleted,omitempty"`
	DomainEndpointOptions       *DomainEndpointOptions         `json:"DomainEndpointOptions,omitempty"`
	DomainId                    *string                        `json:"DomainId,omitempty"`
	DomainName                  *string                        `json:"DomainName,omitempty"`
	EBSOptions                  *EBSOptions                    `json:"EBSOptions,omitempty"`
	ElasticsearchClusterConfig  *ElasticsearchClusterConfig    `json:"ElasticsearchClusterConfig,omitempty"`
	ElasticsearchVersion        *string                        `json:"ElasticsearchVersion,omitempty"`
	EncryptionAtRestOptions     *EncryptionAtRestOptions       `json:"EncryptionAtRestOptions,omitempty"`
	Endpoint                    *string                        `json:"Endpoint,omitempty"`
	Endpoints                   map[string]string              `json:"Endpoints,omitempty"`
	LogPublishingOptions        map[string]LogPublishingOption `json:"LogPublishingOptions,omitempty"`
	NodeToNodeEncryptionOptions *NodeToNodeEncryptionOptions   `json:"NodeToNodeEncryptionOptions,omitempty"`
	Processing                  *bool                          `json:"Processing,omitempty"`
	ServiceSoftwareOptions      *ServiceSoftwareOptions        `json:"ServiceSoftwareOptions,omitempty"`
	SnapshotOptions             *SnapshotOptions               `json:"SnapshotOptions,omitempty"`
	UpgradeProcessing           *bool                          `json:"UpgradeProcessing,omitempty"`
	VPCOptions                  *VPCDerivedInfo                `json:"VPCOptions,omitempty"`
}

// ElasticsearchVersionStatus pairs a legacy version string with its state.
type ElasticsearchVersionStatus struct {
	Options *string       `json:"Options,omitempty"`
	Status  *OptionStatus `json:"Status,omitempty"`
}

// ElasticsearchClusterConfigStatus pairs a legacy cluster config with its
// state.
type ElasticsearchClusterConfigStatus struct {
	Options *ElasticsearchClusterConfig `json:"Options,omitempty"`
	Status  *OptionStatus               `json:"Status,omitempty"`
}

// ElasticsearchDomainConfig is the legacy view of a domain's configuration,
// with every block wrapped in its provisioning status.
type ElasticsearchDomainConfig struct {
	AccessPolicies              *AccessPoliciesStatus              `json:"AccessPolicies,omitempty"`
	AdvancedOptions             *AdvancedOptionsStatus             `json:"AdvancedOptions,omitempty"`
	AdvancedSecurityOptions     *AdvancedSecurityOptionsStatus     `json:"AdvancedSecurityOptions,omitempty"`
	AutoTuneOptions             *AutoTuneOptionsStatus             `json:"AutoTuneOptions,omitempty"`
	ChangeProgressDetails       *ChangeProgressDetails             `json:"ChangeProgressDetails,omitempty"`
	CognitoOptions              *CognitoOptionsStatus              `json:"CognitoOptions,omitempty"`
	DomainEndpointOptions       *DomainEndpointOptionsStatus       `json:"DomainEndpointOptions,omitempty"`
	EBSOptions                  *EBSOptionsStatus                  `json:"EBSOptions,omitempty"`
	ElasticsearchClusterConfig  *ElasticsearchClusterConfigStatus  `json:"ElasticsearchClusterConfig,omitempty"`
	ElasticsearchVersion        *ElasticsearchVersionStatus        `json:"ElasticsearchVersion,omitempty"`
	EncryptionAtRestOptions     *EncryptionAtRestOptionsStatus     `json:"EncryptionAtRestOptions,omitempty"`
	LogPublishingOptions        *LogPublishingOptionsStatus        `json:"LogPublishingOptions,omitempty"`
	NodeToNodeEncryptionOptions *NodeToNodeEncryptionOptionsStatus `json:"NodeToNodeEncryptionOptions,omitempty"`
	SnapshotOptions             *SnapshotOptionsStatus             `json:"SnapshotOptions,omitempty"`
	VPCOptions                  *VPCDerivedInfoStatus              `json:"VPCOptions,omitempty"`
}

// CompatibleVersionsMap lists the upgrade targets reachable from a source
// version, both in legacy vocabulary.
type CompatibleVersionsMap struct {
	SourceVersion  *string  `json:"SourceVersion,omitempty"`
	TargetVersions []string `json:"TargetVersions"`
}
