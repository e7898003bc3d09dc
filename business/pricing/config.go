package pricing

const defaultDisplayPrecision = 2

// Config is passed explicitly to the service and the engine; nothing in this
// package reads process-wide state.
type Config struct {
	// DisplayPrecision is the number of decimals kept in PriceResult fields.
	DisplayPrecision int32
}

func DefaultConfig() Config {
	return Config{
		DisplayPrecision: defaultDisplayPrecision,
	}
}
