package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"weathertext.app/internal/ports"
)

const DefaultCacheSeconds = 300

// Settings is the user-facing configuration persisted by the host as one blob
type Settings struct {
	Source       ports.ProviderID `json:"source" validate:"provider"`
	CacheSeconds int              `json:"cacheSeconds" validate:"gte=0"`
	AddRibbon    bool             `json:"addRibbon"`
}

// Patch carries a partial update; nil fields are left as they are
type Patch struct {
	Source       *ports.ProviderID `json:"source,omitempty"`
	CacheSeconds *int              `json:"cacheSeconds,omitempty"`
	AddRibbon    *bool             `json:"addRibbon,omitempty"`
}

// Defaults returns the settings used when nothing has been persisted
func Defaults() Settings {
	return Settings{
		Source:       ports.ProviderUnset,
		CacheSeconds: DefaultCacheSeconds,
		AddRibbon:    true,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegisterValidation(v, "provider", isSelectableProvider)
	return v
}

// mustRegisterValidation panics when a rule cannot be registered, so a
// settings value is never validated with a rule missing
func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("settings: register %q validation: %v", tag, err))
	}
}

func isSelectableProvider(fl validator.FieldLevel) bool {
	return ports.ProviderID(fl.Field().Int()).IsValid()
}

// Validate checks the settings against their field constraints
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%s: value %v violates %q", fe.Field(), fe.Value(), fe.Tag())
	}
	return err
}

// Apply returns a copy of s with the non-nil patch fields set
func (s Settings) Apply(patch Patch) Settings {
	if patch.Source != nil {
		s.Source = *patch.Source
	}
	if patch.CacheSeconds != nil {
		s.CacheSeconds = *patch.CacheSeconds
	}
	if patch.AddRibbon != nil {
		s.AddRibbon = *patch.AddRibbon
	}
	return s
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.Source == nil && p.CacheSeconds == nil && p.AddRibbon == nil
}

// Merge overlays a persisted blob onto defaults, key by key. Keys that are
// missing keep their default, unknown keys are ignored, and keys whose value
// cannot be decoded or fails validation keep their default and are reported.
func Merge(defaults Settings, blob []byte) (Settings, []string, error) {
	merged := defaults
	if len(strings.TrimSpace(string(blob))) == 0 {
		return merged, nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return defaults, nil, fmt.Errorf("persisted settings are not a JSON object: %w", err)
	}

	var rejected []string

	if value, ok := raw["source"]; ok {
		var source ports.ProviderID
		if err := json.Unmarshal(value, &source); err != nil || !source.IsValid() {
			rejected = append(rejected, "source")
		} else {
			merged.Source = source
		}
	}

	if value, ok := raw["cacheSeconds"]; ok {
		var seconds int
		if err := json.Unmarshal(value, &seconds); err != nil || seconds < 0 {
			rejected = append(rejected, "cacheSeconds")
		} else {
			merged.CacheSeconds = seconds
		}
	}

	if value, ok := raw["addRibbon"]; ok {
		var addRibbon bool
		if err := json.Unmarshal(value, &addRibbon); err != nil {
			rejected = append(rejected, "addRibbon")
		} else {
			merged.AddRibbon = addRibbon
		}
	}

	return merged, rejected, nil
}
