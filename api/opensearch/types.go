// Package opensearch defines the current OpenSearch Service dialect of the
// domain-management API: the shapes exchanged with the backing service.
// Engine versions are prefixed strings ("Elasticsearch_7.10" or
// "OpenSearch_1.1"), and instance type names carry the "search" suffix.
package opensearch

import "github.com/esbridge/esbridge/api/core"

// APIVersion is the wire version prefix of the current dialect routes.
const APIVersion = "2021-01-01"

// EngineVersion prefixes distinguishing the two engines.
const (
	EnginePrefixElasticsearch = "Elasticsearch_"
	EnginePrefixOpenSearch    = "OpenSearch_"
)

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

// ClusterConfig describes the node topology of a domain. The three instance
// type fields use names ending in "search" (for example "m5.large.search").
type ClusterConfig struct {
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

// DomainStatus is the current view of a domain.
type DomainStatus struct {
	ARN                         *string                        `json:"ARN,omitempty"`
	AccessPolicies              *string                        `json:"AccessPolicies,omitempty"`
	AdvancedOptions             map[string]string              `json:"AdvancedOptions,omitempty"`
	AdvancedSecurityOptions     *AdvancedSecurityOptions       `json:"AdvancedSecurityOptions,omitempty"`
	AutoTuneOptions             *AutoTuneOptions               `json:"AutoTuneOptions,omitempty"`
	ChangeProgressDetails       *ChangeProgressDetails         `json:"ChangeProgressDetails,omitempty"`
	ClusterConfig               *ClusterConfig                 `json:"ClusterConfig,omitempty"`
	CognitoOptions              *CognitoOptions                `json:"CognitoOptions,omitempty"`
	Created                     *bool                          `json:"Created,omitempty"`
	Deleted                     *bool                          `json:"Deleted,omitempty"`
	DomainEndpointOptions       *DomainEndpointOptions         `json:"DomainEndpointOptions,omitempty"`
	DomainId                    *string                        `json:"DomainId,omitempty"`
	DomainName                  *string                        `json:"DomainName,omitempty"`
	EBSOptions                  *EBSOptions                    `json:"EBSOptions,omitempty"`
	EncryptionAtRestOptions     *EncryptionAtRestOptions       `json:"EncryptionAtRestOptions,omitempty"`
	Endpoint                    *string                        `json:"Endpoint,omitempty"`
	Endpoints                   map[string]string              `json:"Endpoints,omitempty"`
	EngineVersion               *string                        `json:"EngineVersion,omitempty"`
	LogPublishingOptions        map[string]LogPublishingOption `json:"LogPublishingOptions,omitempty"`
	NodeToNodeEncryptionOptions *NodeToNodeEncryptionOptions   `json:"NodeToNodeEncryptionOptions,omitempty"`
	Processing                  *bool                          `json:"Processing,omitempty"`
	ServiceSoftwareOptions      *ServiceSoftwareOptions        `json:"ServiceSoftwareOptions,omitempty"`
	SnapshotOptions             *SnapshotOptions               `json:"SnapshotOptions,omitempty"`
	UpgradeProcessing           *bool                          `json:"UpgradeProcessing,omitempty"`
	VPCOptions                  *VPCDerivedInfo                `json:"VPCOptions,omitempty"`
}

// VersionStatus pairs an engine version string with its state.
type VersionStatus struct {
	Options *string       `json:"Options,omitempty"`
	Status  *OptionStatus `json:"Status,omitempty"`
}

// ClusterConfigStatus pairs a cluster config with its state.
type ClusterConfigStatus struct {
	Options *ClusterConfig `json:"Options,omitempty"`
	Status  *OptionStatus  `json:"Status,omitempty"`
}

// DomainConfig is the current view of a domain's configuration, with every
// block wrapped in its provisioning status.
type DomainConfig struct {
	AccessPolicies              *AccessPoliciesStatus              `json:"AccessPolicies,omitempty"`
	AdvancedOptions             *AdvancedOptionsStatus             `json:"AdvancedOptions,omitempty"`
	AdvancedSecurityOptions     *AdvancedSecurityOptionsStatus     `json:"AdvancedSecurityOptions,omitempty"`
	AutoTuneOptions             *AutoTuneOptionsStatus             `json:"AutoTuneOptions,omitempty"`
	ChangeProgressDetails       *ChangeProgressDetails             `json:"ChangeProgressDetails,omitempty"`
	ClusterConfig               *ClusterConfigStatus               `json:"ClusterConfig,omitempty"`
	CognitoOptions              *CognitoOptionsStatus              `json:"CognitoOptions,omitempty"`
	DomainEndpointOptions       *DomainEndpointOptionsStatus       `json:"DomainEndpointOptions,omitempty"`
	EBSOptions                  *EBSOptionsStatus                  `json:"EBSOptions,omitempty"`
	EncryptionAtRestOptions     *EncryptionAtRestOptionsStatus     `json:"EncryptionAtRestOptions,omitempty"`
	EngineVersion               *VersionStatus                     `json:"EngineVersion,omitempty"`
	LogPublishingOptions        *LogPublishingOptionsStatus        `json:"LogPublishingOptions,omitempty"`
	NodeToNodeEncryptionOptions *NodeToNodeEncryptionOptionsStatus `json:"NodeToNodeEncryptionOptions,omitempty"`
	SnapshotOptions             *SnapshotOptionsStatus             `json:"SnapshotOptions,omitempty"`
	VPCOptions                  *VPCDerivedInfoStatus              `json:"VPCOptions,omitempty"`
}

// CompatibleVersionsMap lists the upgrade targets reachable from a source
// version, both as prefixed engine versions.
type CompatibleVersionsMap struct {
	SourceVersion  *string  `json:"SourceVersion,omitempty"`
	TargetVersions []string `json:"TargetVersions"`
}
