package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("session.secret must be at least 32 characters (got %d)", len(c.Session.Secret))
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0 (got %v)", c.Session.TTL)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Geocoder.Timeout <= 0 {
		return fmt.Errorf("geocoder.timeout must be > 0 (got %v)", c.Geocoder.Timeout)
	}

	if err := c.Images.validate(); err != nil {
		return fmt.Errorf("images: %w", err)
	}

	if c.Campgrounds.StoreTimeout <= 0 {
		return fmt.Errorf("campgrounds.store_timeout must be > 0 (got %v)", c.Campgrounds.StoreTimeout)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverMongo, d.Driver)
	}
	if d.Driver == DriverMongo && d.Name == "" {
		return fmt.Errorf("name is required for the mongo driver")
	}
	return nil
}

func (i *ImagesConfig) validate() error {
	u, err := url.Parse(i.PublicBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("public_base_url must be an absolute http(s) URL (got %q)", i.PublicBaseURL)
	}
	if i.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", i.MaxUploadBytes)
	}
	if i.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", i.Timeout)
	}
	return nil
}
