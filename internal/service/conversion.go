package service

import (
	"strings"

	esapi "github.com/esbridge/esbridge/api/es"
	osapi "github.com/esbridge/esbridge/api/opensearch"
	"github.com/samber/lo"
)

func versionValueToOpenSearch(version string) string {
	if strings.HasPrefix(version, osapi.EnginePrefixOpenSearch) {
		return version
	}
	return osapi.EnginePrefixElasticsearch + version
}

// versionValueFromOpenSearch strips the Elasticsearch engine prefix:
// "Elasticsearch_7.10" yields "7.10". OpenSearch versions pass through
// prefixed so callers can tell the engines apart.
func versionValueFromOpenSearch(version string) string {
	if strings.HasPrefix(version, osapi.EnginePrefixElasticsearch) {
		return strings.Split(version, "_")[1]
	}
	return version
}

func VersionToOpenSearch(version *string) *string {
	if version == nil {
		return nil
	}
	return lo.ToPtr(versionValueToOpenSearch(*version))
}

func VersionFromOpenSearch(version *string) *string {
	if version == nil {
		return nil
	}
	return lo.ToPtr(versionValueFromOpenSearch(*version))
}

func VersionListFromOpenSearch(versions []string) []string {
	if versions == nil {
		return nil
	}
	result := make([]string, len(versions))
	for i, version := range versions {
		result[i] = versionValueFromOpenSearch(version)
	}
	return result
}

func InstanceTypeToOpenSearch(instanceType *string) *string {
	if instanceType == nil {
		return nil
	}
	return lo.ToPtr(strings.ReplaceAll(*instanceType, "elasticsearch", "search"))
}

func InstanceTypeFromOpenSearch(instanceType *string) *string {
	if instanceType == nil {
		return nil
	}
	return lo.ToPtr(strings.ReplaceAll(*instanceType, "search", "elasticsearch"))
}

func ClusterConfigToOpenSearch(config *esapi.ElasticsearchClusterConfig) *osapi.ClusterConfig {
	if config == nil {
		return nil
	}
	return &osapi.ClusterConfig{
		ColdStorageOptions:     config.ColdStorageOptions,
		DedicatedMasterCount:   config.DedicatedMasterCount,
		DedicatedMasterEnabled: config.DedicatedMasterEnabled,
		DedicatedMasterType:    InstanceTypeToOpenSearch(config.DedicatedMasterType),
		InstanceCount:          config.InstanceCount,
		InstanceType:           InstanceTypeToOpenSearch(config.InstanceType),
		WarmCount:              config.WarmCount,
		WarmEnabled:            config.WarmEnabled,
		WarmType:               InstanceTypeToOpenSearch(config.WarmType),
		ZoneAwarenessConfig:    config.ZoneAwarenessConfig,
		ZoneAwarenessEnabled:   config.ZoneAwarenessEnabled,
	}
}

func ClusterConfigFromOpenSearch(config *osapi.ClusterConfig) *esapi.ElasticsearchClusterConfig {
	if config == nil {
		return nil
	}
	return &esapi.ElasticsearchClusterConfig{
		ColdStorageOptions:     config.ColdStorageOptions,
		DedicatedMasterCount:   config.DedicatedMasterCount,
		DedicatedMasterEnabled: config.DedicatedMasterEnabled,
		DedicatedMasterType:    InstanceTypeFromOpenSearch(config.DedicatedMasterType),
		InstanceCount:          config.InstanceCount,
		InstanceType:           InstanceTypeFromOpenSearch(config.InstanceType),
		WarmCount:              config.WarmCount,
		WarmEnabled:            config.WarmEnabled,
		WarmType:               InstanceTypeFromOpenSearch(config.WarmType),
		ZoneAwarenessConfig:    config.ZoneAwarenessConfig,
		ZoneAwarenessEnabled:   config.ZoneAwarenessEnabled,
	}
}

func DomainStatusFromOpenSearch(status *osapi.DomainStatus) *esapi.ElasticsearchDomainStatus {
	if status == nil {
		return nil
	}
	return &esapi.ElasticsearchDomainStatus{
		ARN:                         status.ARN,
		AccessPolicies:              status.AccessPolicies,
		AdvancedOptions:             status.AdvancedOptions,
		AdvancedSecurityOptions:     status.AdvancedSecurityOptions,
		AutoTuneOptions:             status.AutoTuneOptions,
		ChangeProgressDetails:       status.ChangeProgressDetails,
		CognitoOptions:              status.CognitoOptions,
		Created:                     status.Created,
		Deleted:                     status.Deleted,
		DomainEndpointOptions:       status.DomainEndpointOptions,
		DomainId:                    status.DomainId,
		DomainName:                  status.DomainName,
		EBSOptions:                  status.EBSOptions,
		ElasticsearchClusterConfig:  ClusterConfigFromOpenSearch(status.ClusterConfig),
		ElasticsearchVersion:        VersionFromOpenSearch(status.EngineVersion),
		EncryptionAtRestOptions:     status.EncryptionAtRestOptions,
		Endpoint:                    status.Endpoint,
		Endpoints:                   status.Endpoints,
		LogPublishingOptions:        status.LogPublishingOptions,
		NodeToNodeEncryptionOptions: status.NodeToNodeEncryptionOptions,
		Processing:                  status.Processing,
		ServiceSoftwareOptions:      status.ServiceSoftwareOptions,
		SnapshotOptions:             status.SnapshotOptions,
		UpgradeProcessing:           status.UpgradeProcessing,
		VPCOptions:                  status.VPCOptions,
	}
}

func DomainStatusListFromOpenSearch(statuses []osapi.DomainStatus) []esapi.ElasticsearchDomainStatus {
	result := make([]esapi.ElasticsearchDomainStatus, len(statuses))
	for i, status := range statuses {
		result[i] = *DomainStatusFromOpenSearch(&status)
	}
	return result
}

func VersionStatusFromOpenSearch(status *osapi.VersionStatus) *esapi.ElasticsearchVersionStatus {
	if status == nil {
		return nil
	}
	return &esapi.ElasticsearchVersionStatus{
		Options: VersionFromOpenSearch(status.Options),
		Status:  status.Status,
	}
}

func ClusterConfigStatusFromOpenSearch(status *osapi.ClusterConfigStatus) *esapi.ElasticsearchClusterConfigStatus {
	if status == nil {
		return nil
	}
	return &esapi.ElasticsearchClusterConfigStatus{
		Options: ClusterConfigFromOpenSearch(status.Options),
		Status:  status.Status,
	}
}

func DomainConfigFromOpenSearch(config *osapi.DomainConfig) *esapi.ElasticsearchDomainConfig {
	if config == nil {
		return nil
	}
	return &esapi.ElasticsearchDomainConfig{
		AccessPolicies:              config.AccessPolicies,
		AdvancedOptions:             config.AdvancedOptions,
		AdvancedSecurityOptions:     config.AdvancedSecurityOptions,
		AutoTuneOptions:             config.AutoTuneOptions,
		ChangeProgressDetails:       config.ChangeProgressDetails,
		CognitoOptions:              config.CognitoOptions,
		DomainEndpointOptions:       config.DomainEndpointOptions,
		EBSOptions:                  config.EBSOptions,
		ElasticsearchClusterConfig:  ClusterConfigStatusFromOpenSearch(config.ClusterConfig),
		ElasticsearchVersion:        VersionStatusFromOpenSearch(config.EngineVersion),
		EncryptionAtRestOptions:     config.EncryptionAtRestOptions,
		LogPublishingOptions:        config.LogPublishingOptions,
		NodeToNodeEncryptionOptions: config.NodeToNodeEncryptionOptions,
		SnapshotOptions:             config.SnapshotOptions,
		VPCOptions:                  config.VPCOptions,
	}
}

func CompatibleVersionsFromOpenSearch(compatible []osapi.CompatibleVersionsMap) []esapi.CompatibleVersionsMap {
	result := make([]esapi.CompatibleVersionsMap, len(compatible))
	for i, entry := range compatible {
		result[i] = esapi.CompatibleVersionsMap{
			SourceVersion:  VersionFromOpenSearch(entry.SourceVersion),
			TargetVersions: VersionListFromOpenSearch(entry.TargetVersions),
		}
	}
	return result
}

func CreateDomainRequestToOpenSearch(request *esapi.CreateElasticsearchDomainRequest) *osapi.CreateDomainRequest {
	if request == nil {
		return nil
	}
	return &osapi.CreateDomainRequest{
		AccessPolicies:              request.AccessPolicies,
		AdvancedOptions:             request.AdvancedOptions,
		AdvancedSecurityOptions:     request.AdvancedSecurityOptions,
		AutoTuneOptions:             request.AutoTuneOptions,
		ClusterConfig:               ClusterConfigToOpenSearch(request.ElasticsearchClusterConfig),
		CognitoOptions:              request.CognitoOptions,
		DomainEndpointOptions:       request.DomainEndpointOptions,
		DomainName:                  request.DomainName,
		EBSOptions:                  request.EBSOptions,
		EncryptionAtRestOptions:     request.EncryptionAtRestOptions,
		EngineVersion:               VersionToOpenSearch(request.ElasticsearchVersion),
		LogPublishingOptions:        request.LogPublishingOptions,
		NodeToNodeEncryptionOptions: request.NodeToNodeEncryptionOptions,
		SnapshotOptions:             request.SnapshotOptions,
		TagList:                     request.TagList,
		VPCOptions:                  request.VPCOptions,
	}
}
