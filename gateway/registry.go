package gateway

import (
	"fmt"
	"net/url"

	"stagelink/config"
)

// Registry is the gateway's static mapping from logical service name to
// backend base URL. It is built once at boot from configuration and is
// read-only afterwards; inject it rather than reaching for globals so
// tests can point it at fake backends.
type Registry struct {
	services map[string]*url.URL
}

// NewRegistry parses the given name -> base URL entries.
func NewRegistry(entries map[string]string) (*Registry, error) {
	services := make(map[string]*url.URL, len(entries))
	for name, raw := range entries {
		target, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL for service %s: %w", name, err)
		}
		services[name] = target
	}
	return &Registry{services: services}, nil
}

// RegistryFromConfig builds the registry from the loaded AppConfig.
func RegistryFromConfig() (*Registry, error) {
	return NewRegistry(map[string]string{
		"auth":          config.AppConfig.AuthServiceURL,
		"artists":       config.AppConfig.ArtistServiceURL,
		"hotels":        config.AppConfig.HotelServiceURL,
		"bookings":      config.AppConfig.BookingServiceURL,
		"payments":      config.AppConfig.PaymentServiceURL,
		"notifications": config.AppConfig.NotificationServiceURL,
		"admin":         config.AppConfig.AdminServiceURL,
	})
}

// Lookup resolves a service name to its backend base URL.
func (r *Registry) Lookup(name string) (*url.URL, bool) {
	target, ok := r.services[name]
	return target, ok
}
