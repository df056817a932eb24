package core

// Status wrappers pair a configuration block with its provisioning state.
// Used by the describe-domain-config responses of both dialects; the blocks
// whose payload differs between dialects (engine version, cluster config)
// have their wrappers defined alongside those payloads instead.

type AccessPoliciesStatus struct {
	Options *string       `json:"Options,omitempty"`
	Status  *OptionStatus `json:"Status,omitempty"`
}

type AdvancedOptionsStatus struct {
	Options map[string]string `json:"Options,omitempty"`
	Status  *OptionStatus     `json:"Status,omitempty"`
}

type AdvancedSecurityOptionsStatus struct {
	Options *AdvancedSecurityOptions `json:"Options,omitempty"`
	Status  *OptionStatus            `json:"Status,omitempty"`
}

type AutoTuneOptionsStatus struct {
	Options *AutoTuneOptions `json:"Options,omitempty"`
	Status  *OptionStatus    `json:"Status,omitempty"`
}

type CognitoOptionsStatus struct {
	Options *CognitoOptions `json:"Options,omitempty"`
	Status  *OptionStatus   `json:"Status,omitempty"`
}

type DomainEndpointOptionsStatus struct {
	Options *DomainEndpointOptions `json:"Options,omitempty"`
	Status  *OptionStatus          `json:"Status,omitempty"`
}

type EBSOptionsStatus struct {
	Options *EBSOptions   `json:"Options,omitempty"`
	Status  *OptionStatus `json:"Status,omitempty"`
}

type EncryptionAtRestOptionsStatus struct {
	Options *EncryptionAtRestOptions `json:"Options,omitempty"`
	Status  *OptionStatus            `json:"Status,omitempty"`
}

type LogPublishingOptionsStatus struct {
	Options map[string]LogPublishingOption `json:"Options,omitempty"`
	Status  *OptionStatus                  `json:"Status,omitempty"`
}

type NodeToNodeEncryptionOptionsStatus struct {
	Options *NodeToNodeEncryptionOptions `json:"Options,omitempty"`
	Status  *OptionStatus                `json:"Status,omitempty"`
}

type SnapshotOptionsStatus struct {
	Options *SnapshotOptions `json:"Options,omitempty"`
	Status  *OptionStatus    `json:"Status,omitempty"`
}

type VPCDerivedInfoStatus struct {
	Options *VPCDerivedInfo `json:"Options,omitempty"`
	Status  *OptionStatus   `json:"Status,omitempty"`
}
