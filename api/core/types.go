// Package core holds the domain option shapes shared verbatim by the legacy
// Elasticsearch dialect and the current OpenSearch dialect of the
// domain-management API. Only the engine version conventions and the cluster
// config container differ between the two dialects; everything in this package
// is carried across unchanged.
package core

import "time"

// Engine types reported for a domain.
const (
	EngineTypeOpenSearch    = "OpenSearch"
	EngineTypeElasticsearch = "Elasticsearch"
)

// States reported in an OptionStatus.
const (
	OptionStateRequiresIndexDocuments = "RequiresIndexDocuments"
	OptionStateProcessing             = "Processing"
	OptionStateActive                 = "Active"
)

// Tag is a resource tag attached to a domain.
type Tag struct {
	Key   *string `json:"Key,omitempty"`
	Value *string `json:"Value,omitempty"`
}

// DomainInfo is a single entry in a domain-name listing.
type DomainInfo struct {
	DomainName *string `json:"DomainName,omitempty"`
	EngineType *string `json:"EngineType,omitempty"`
}

// OptionStatus tracks the provisioning state of a configuration block.
type OptionStatus struct {
	CreationDate    *time.Time `json:"CreationDate,omitempty"`
	PendingDeletion *bool      `json:"PendingDeletion,omitempty"`
	State           *string    `json:"State,omitempty"`
	UpdateDate      *time.Time `json:"UpdateDate,omitempty"`
	UpdateVersion   *int32     `json:"UpdateVersion,omitempty"`
}

// EBSOptions describes the EBS volumes attached to data nodes.
type EBSOptions struct {
	EBSEnabled *bool   `json:"EBSEnabled,omitempty"`
	Iops       *int32  `json:"Iops,omitempty"`
	Throughput *int32  `json:"Throughput,omitempty"`
	VolumeSize *int32  `json:"VolumeSize,omitempty"`
	VolumeType *string `json:"VolumeType,omitempty"`
}

// SnapshotOptions configures the daily automated snapshot window.
type SnapshotOptions struct {
	AutomatedSnapshotStartHour *int32 `json:"AutomatedSnapshotStartHour,omitempty"`
}

// VPCOptions is the request-side VPC placement for a domain.
type VPCOptions struct {
	SecurityGroupIds []string `json:"SecurityGroupIds,omitempty"`
	SubnetIds        []string `json:"SubnetIds,omitempty"`
}

// VPCDerivedInfo is the response-side view of a domain's VPC placement.
type VPCDerivedInfo struct {
	AvailabilityZones []string `json:"AvailabilityZones,omitempty"`
	SecurityGroupIds  []string `json:"SecurityGroupIds,omitempty"`
	SubnetIds         []string `json:"SubnetIds,omitempty"`
	VPCId             *string  `json:"VPCId,omitempty"`
}

// CognitoOptions configures Cognito authentication for dashboards.
type CognitoOptions struct {
	Enabled        *bool   `json:"Enabled,omitempty"`
	IdentityPoolId *string `json:"IdentityPoolId,omitempty"`
	RoleArn        *string `json:"RoleArn,omitempty"`
	UserPoolId     *string `json:"UserPoolId,omitempty"`
}

// EncryptionAtRestOptions configures encryption of data at rest.
type EncryptionAtRestOptions struct {
	Enabled  *bool   `json:"Enabled,omitempty"`
	KmsKeyId *string `json:"KmsKeyId,omitempty"`
}

// NodeToNodeEncryptionOptions configures TLS between cluster nodes.
type NodeToNodeEncryptionOptions struct {
	Enabled *bool `json:"Enabled,omitempty"`
}

// DomainEndpointOptions configures the domain's HTTPS endpoint.
type DomainEndpointOptions struct {
	CustomEndpoint               *string `json:"CustomEndpoint,omitempty"`
	CustomEndpointCertificateArn *string `json:"CustomEndpointCertificateArn,omitempty"`
	CustomEndpointEnabled        *bool   `json:"CustomEndpointEnabled,omitempty"`
	EnforceHTTPS                 *bool   `json:"EnforceHTTPS,omitempty"`
	TLSSecurityPolicy            *string `json:"TLSSecurityPolicy,omitempty"`
}

// MasterUserOptions carries fine-grained access control master user
// credentials. Request-only; never echoed in responses.
type MasterUserOptions struct {
	MasterUserARN      *string `json:"MasterUserARN,omitempty"`
	MasterUserName     *string `json:"MasterUserName,omitempty"`
	MasterUserPassword *string `json:"MasterUserPassword,omitempty"`
}

// AdvancedSecurityOptions configures fine-grained access control.
type AdvancedSecurityOptions struct {
	Enabled                     *bool              `json:"Enabled,omitempty"`
	InternalUserDatabaseEnabled *bool              `json:"InternalUserDatabaseEnabled,omitempty"`
	MasterUserOptions           *MasterUserOptions `json:"MasterUserOptions,omitempty"`
}

// AutoTuneDuration is a maintenance schedule duration.
type AutoTuneDuration struct {
	Unit  *string `json:"Unit,omitempty"`
	Value *int64  `json:"Value,omitempty"`
}

// AutoTuneMaintenanceSchedule is a single Auto-Tune maintenance window.
type AutoTuneMaintenanceSchedule struct {
	CronExpressionForRecurrence *string           `json:"CronExpressionForRecurrence,omitempty"`
	Duration                    *AutoTuneDuration `json:"Duration,omitempty"`
	StartAt                     *time.Time        `json:"StartAt,omitempty"`
}

// AutoTuneOptions configures the Auto-Tune feature.
type AutoTuneOptions struct {
	DesiredState         *string                       `json:"DesiredState,omitempty"`
	MaintenanceSchedules []AutoTuneMaintenanceSchedule `json:"MaintenanceSchedules,omitempty"`
	RollbackOnDisable    *string                       `json:"RollbackOnDisable,omitempty"`
}

// LogPublishingOption configures publishing of one log type to CloudWatch.
type LogPublishingOption struct {
	CloudWatchLogsLogGroupArn *string `json:"CloudWatchLogsLogGroupArn,omitempty"`
	Enabled                   *bool   `json:"Enabled,omitempty"`
}

// ServiceSoftwareOptions reports the service software state of a domain.
type ServiceSoftwareOptions struct {
	AutomatedUpdateDate *time.Time `json:"AutomatedUpdateDate,omitempty"`
	Cancellable         *bool      `json:"Cancellable,omitempty"`
	CurrentVersion      *string    `json:"CurrentVersion,omitempty"`
	Description         *string    `json:"Description,omitempty"`
	NewVersion          *string    `json:"NewVersion,omitempty"`
	OptionalDeployment  *bool      `json:"OptionalDeployment,omitempty"`
	UpdateAvailable     *bool      `json:"UpdateAvailable,omitempty"`
	UpdateStatus        *string    `json:"UpdateStatus,omitempty"`
}

// ColdStorageOptions enables cold storage on a domain.
type ColdStorageOptions struct {
	Enabled *bool `json:"Enabled,omitempty"`
}

// ZoneAwarenessConfig configures the zone awareness zone count.
type ZoneAwarenessConfig struct {
	AvailabilityZoneCount *int32 `json:"AvailabilityZoneCount,omitempty"`
}

// ChangeProgressDetails summarizes an in-flight configuration change.
type ChangeProgressDetails struct {
	ChangeId *string `json:"ChangeId,omitempty"`
	Message  *string `json:"Message,omitempty"`
}
