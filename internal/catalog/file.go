package catalog

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog from a YAML file. All three lists must be
// present and non-empty, so a partial file cannot silently shrink the
// lookup space.
func Load(path string) (Catalog, error) {
	log.WithField("file", path).Info("Loading catalog")
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("error reading catalog file: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("error parsing catalog file %s: %w", path, err)
	}
	if len(c.Banks) == 0 || len(c.PaymentMethods) == 0 || len(c.DocumentTypes) == 0 {
		return Catalog{}, fmt.Errorf("catalog file %s is incomplete: banks, payment_methods and document_types are all required", path)
	}
	log.WithFields(logrus.Fields{
		"banks":           len(c.Banks),
		"payment_methods": len(c.PaymentMethods),
		"document_types":  len(c.DocumentTypes),
	}).Debug("Catalog loaded")
	return c, nil
}

// Save writes the catalog as YAML.
func Save(c Catalog, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshalling catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing catalog file: %w", err)
	}
	log.WithField("file", path).Info("Catalog saved")
	return nil
}
