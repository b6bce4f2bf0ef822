package entities

// Default integration settings applied when a config is registered without
// explicit values
const (
	DefaultIntegrationMode    = "STANDALONE"
	DefaultIntegrationDisplay = "STANDALONE"
	DefaultIntegrationMapping = "ONE_TO_ONE"
)

// TerminalConfig represents the integrated-mode configuration of a terminal
type TerminalConfig struct {
	MerchantID                string `json:"merchantId"`
	TerminalID                string `json:"terminalId"`
	IntegrationMode           string `json:"integrationMode"`
	IntegratedModeDisplayName string `json:"integratedModeDisplayName"`
	IntegrationMappingType    string `json:"integrationMappingType"`
	Timestamp                 string `json:"timestamp"`
}
