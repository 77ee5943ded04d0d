package domain

// ServiceInfo is a discovered service's advertised identity.
type ServiceInfo struct {
	Name         string
	Manufacturer string
	Version      string
	Description  string
	URI          string
	Endpoint     string
	Fingerprint  Fingerprint
	Methods      []string
}

// ServiceDetails is the full detail for one service, fetched on demand as a
// second round trip after discovery.
type ServiceDetails struct {
	Info         ServiceInfo
	ProtoFiles   []ProtoFile
	Dependencies []DependencySpec
}

// AvailabilityStatus is the outcome of a presence check via discovery.
type AvailabilityStatus struct {
	Available bool
	Detail    string
}

// FormatActrType renders the manifest form of a service type,
// "<manufacturer>+<name>".
func FormatActrType(manufacturer, name string) string {
	if manufacturer == "" {
		manufacturer = DefaultManufacturer
	}
	return manufacturer + "+" + name
}

// QualifiedName renders the display form of a service type,
// "<manufacturer>:<name>", matched by filter patterns alongside the short
// name.
func QualifiedName(manufacturer, name string) string {
	if manufacturer == "" {
		manufacturer = DefaultManufacturer
	}
	return manufacturer + ":" + name
}

// DefaultManufacturer is assumed when a discovery entry carries no
// manufacturer of its own.
const DefaultManufacturer = "actr"
