package config

// SettingType defines the expected type for a settings value.
type SettingType int

const (
	TypeBool SettingType = iota
	TypeString
)

// String returns the string representation of SettingType.
func (t SettingType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// SettingSchema describes a known settings key.
type SettingSchema struct {
	Path        string      // Key in the settings file
	Type        SettingType // Expected value type
	Description string      // Human-readable description for help text
	Default     interface{} // Default value
}

// KnownKeys is the registry of all persisted settings keys.
var KnownKeys = map[string]SettingSchema{
	"notifier": {
		Path:        "notifier",
		Type:        TypeString,
		Description: "Comma-separated notification backends: echo, libnotify",
		Default:     "echo",
	},
	"repeat": {
		Path:        "repeat",
		Type:        TypeBool,
		Description: "Restart the pattern automatically after each full run",
		Default:     false,
	},
	"pattern": {
		Path:        "pattern",
		Type:        TypeString,
		Description: "Timer cycle as colon-separated kind,seconds tokens",
		Default:     nil, // filled from pattern.DefaultString() at init
	},
}

func init() {
	s := KnownKeys["pattern"]
	s.Default = GetDefaults()["pattern"]
	KnownKeys["pattern"] = s
}
