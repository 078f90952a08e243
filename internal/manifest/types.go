package manifest

// Network names used in settings files.
const (
	NetworkDevnet  = "devnet"
	NetworkTestnet = "testnet"
	NetworkMainnet = "mainnet"
)

// ProjectManifest is the decoded Clarinet.toml.
type ProjectManifest struct {
	Project   ProjectSection           `toml:"project"`
	Contracts map[string]ContractEntry `toml:"contracts"`
	Repl      ReplSection              `toml:"repl"`
}

// ProjectSection holds the [project] table.
type ProjectSection struct {
	Name      string   `toml:"name"`
	Authors   []string `toml:"authors"`
	Telemetry bool     `toml:"telemetry"`
	CacheDir  string   `toml:"cache_dir"`
}

// ContractEntry is one [contracts.<name>] table.
type ContractEntry struct {
	Path string `toml:"path"`
}

// ReplSection holds the [repl] table.
type ReplSection struct {
	Analysis AnalysisSettings `toml:"analysis"`
}

// AnalysisSettings configures static analysis passes.
type AnalysisSettings struct {
	Passes       []string            `toml:"passes"`
	CheckChecker CheckCheckerOptions `toml:"check_checker"`
}

// CheckCheckerOptions tunes the check_checker pass.
type CheckCheckerOptions struct {
	TrustedSender bool `toml:"trusted_sender"`
	TrustedCaller bool `toml:"trusted_caller"`
	CalleeFilter  bool `toml:"callee_filter"`
}

// NetworkSettings is a decoded settings/<Network>.toml.
type NetworkSettings struct {
	Network  NetworkSection     `toml:"network"`
	Accounts map[string]Account `toml:"accounts"`
	Devnet   *DevnetSection     `toml:"devnet"`
}

// NetworkSection holds the [network] table.
type NetworkSection struct {
	Name                 string `toml:"name"`
	StacksNodeRPCAddress string `toml:"stacks_node_rpc_address"`
	DeploymentFeeRate    uint64 `toml:"deployment_fee_rate"`
}

// Account is one [accounts.<name>] table.
type Account struct {
	Mnemonic string `toml:"mnemonic"`
	Balance  uint64 `toml:"balance"`
}

// DevnetSection holds the [devnet] table. Only the keys the generated
// template leaves uncommented are modeled.
type DevnetSection struct {
	DisableStacksExplorer bool            `toml:"disable_stacks_explorer"`
	DisableStacksAPI      bool            `toml:"disable_stacks_api"`
	PoxStackingOrders     []StackingOrder `toml:"pox_stacking_orders"`
}

// StackingOrder is one [[devnet.pox_stacking_orders]] entry.
type StackingOrder struct {
	StartAtCycle uint32 `toml:"start_at_cycle"`
	Duration     uint32 `toml:"duration"`
	Wallet       string `toml:"wallet"`
	Slots        uint64 `toml:"slots"`
	BTCAddress   string `toml:"btc_address"`
}
