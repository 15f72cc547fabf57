// Package portfolio loads and validates the candidate's master portfolio
// from YAML. The portfolio is the single source of truth for everything
// the generated documents are allowed to claim.
package portfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/amaldonado/cv-forge/internal/types"
)

// DefaultPath is where the portfolio lives unless overridden.
const DefaultPath = "data/portfolio.yaml"

// PhoneEnvVar overrides the portfolio phone number at load time so the
// committed YAML never needs to carry the real one.
const PhoneEnvVar = "PHONE_NUMBER"

// LoadError describes a portfolio loading or validation failure.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("portfolio error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("portfolio error for %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Provider loads the portfolio once and serves the cached copy until
// Reload is called. Safe for concurrent use.
type Provider struct {
	path string

	mu        sync.RWMutex
	portfolio *types.Portfolio
}

// NewProvider creates a provider for the given YAML path. An empty path
// uses DefaultPath.
func NewProvider(path string) *Provider {
	if path == "" {
		path = DefaultPath
	}
	return &Provider{path: path}
}

// Path returns the YAML path this provider reads from.
func (p *Provider) Path() string {
	return p.path
}

// Load returns the portfolio, reading the file on first use.
func (p *Provider) Load() (*types.Portfolio, error) {
	p.mu.RLock()
	cached := p.portfolio
	p.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}
	return p.Reload()
}

// Reload re-reads the portfolio from disk, replacing the cached copy.
func (p *Provider) Reload() (*types.Portfolio, error) {
	portfolio, err := LoadFile(p.path)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.portfolio = portfolio
	p.mu.Unlock()
	return portfolio, nil
}

// LoadFile reads, validates, and applies environment overrides to a
// portfolio YAML file.
func LoadFile(path string) (*types.Portfolio, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &LoadError{Path: path, Message: "failed to get current directory", Cause: err}
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	return Parse(data, path)
}

// Parse decodes and validates portfolio YAML. The path parameter is only
// used for error messages.
func Parse(data []byte, path string) (*types.Portfolio, error) {
	var portfolio types.Portfolio
	if err := yaml.Unmarshal(data, &portfolio); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse YAML", Cause: err}
	}

	applyEnvOverrides(&portfolio)

	if err := validate(&portfolio); err != nil {
		return nil, &LoadError{Path: path, Message: "validation failed", Cause: err}
	}

	return &portfolio, nil
}

var structValidator = validator.New()

func validate(portfolio *types.Portfolio) error {
	if err := structValidator.Struct(portfolio); err != nil {
		return err
	}

	// Experience entries are the raw material for every document.
	if len(portfolio.Jobs) == 0 {
		return fmt.Errorf("portfolio must contain at least one experience entry")
	}

	return nil
}

func applyEnvOverrides(portfolio *types.Portfolio) {
	if phone := os.Getenv(PhoneEnvVar); phone != "" {
		portfolio.PersonalInfo.Phone = phone
	}
}
