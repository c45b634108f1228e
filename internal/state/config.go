package state

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-rl/pkg/errors"
)

// EncoderConfig configures the state encoder.
type EncoderConfig struct {
	// WindowSize is the number of trailing daily price differences in the
	// state vector.
	WindowSize int `yaml:"window_size" json:"window_size" validate:"gte=0" jsonschema:"title=Window Size,description=Number of trailing daily price differences in the state vector,minimum=0"`
	// IncludePortfolio appends the log price/balance/holdings features to
	// the state vector.
	IncludePortfolio bool `yaml:"include_portfolio" json:"include_portfolio" jsonschema:"title=Include Portfolio,description=Append log price/balance/holdings features to the state vector"`
}

// DefaultConfig returns the encoder configuration used when none is supplied.
func DefaultConfig() EncoderConfig {
	return EncoderConfig{
		WindowSize:       10,
		IncludePortfolio: false,
	}
}

// Validate validates the EncoderConfig struct.
func (c *EncoderConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid encoder config", err)
	}

	return nil
}

// GenerateSchema generates a JSON schema for the EncoderConfig
func (c *EncoderConfig) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
	}

	// Generate schema from EncoderConfig struct
	schema := reflector.Reflect(c)

	// Set schema metadata
	schema.Title = "state-encoder-config"
	schema.Description = "Configuration schema for the state encoder"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the EncoderConfig
func (c *EncoderConfig) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

// Encoder binds an EncoderConfig to the encoding functions so callers can
// produce one state per time step without re-passing the window settings.
type Encoder struct {
	config EncoderConfig
}

// NewEncoder creates an Encoder after validating the configuration.
func NewEncoder(config EncoderConfig) (*Encoder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Encoder{config: config}, nil
}

// StateSize returns the length of every vector the encoder produces.
func (e *Encoder) StateSize() int {
	if e.config.IncludePortfolio {
		return e.config.WindowSize + 3
	}

	return e.config.WindowSize
}

// Encode produces the state vector at index t. The balance and holdings
// arguments are only consulted when the configuration includes portfolio
// features.
func (e *Encoder) Encode(prices []float64, t int, balance float64, holdings float64) []float64 {
	if e.config.IncludePortfolio {
		return CombinedState(prices, t, e.config.WindowSize, balance, holdings)
	}

	return PriceWindowState(prices, t, e.config.WindowSize)
}
