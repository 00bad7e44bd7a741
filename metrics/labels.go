package metrics

const (
	LABEL_MODULE      = "module"
	LABEL_VERSION     = "version"
	LABEL_BENEFICIARY = "beneficiary"
	LABEL_STRATEGY    = "strategy"
)
