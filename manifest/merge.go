package manifest

import (
	"github.com/mitchellh/mapstructure"

	"github.com/hookline/hookline/config"
	"github.com/hookline/hookline/errors"
)

// merge layers the override's set fields over the base definition. Both
// hooks are flattened to maps so that only keys the override actually sets
// replace the base values.
func merge(base, override *config.Hook) (*config.Hook, error) {
	baseMap, err := hookToMap(base)
	if err != nil {
		return nil, err
	}
	overMap, err := hookToMap(override)
	if err != nil {
		return nil, err
	}

	for key, value := range overMap {
		if isZero(value) {
			continue
		}
		baseMap[key] = value
	}

	var merged config.Hook
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &merged,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "build hook decoder")
	}
	if err := decoder.Decode(baseMap); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "merge hook override")
	}

	return &merged, nil
}

func hookToMap(hook *config.Hook) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if err := mapstructure.Decode(hook, &out); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "flatten hook")
	}
	return out, nil
}

// isZero reports whether a flattened field value was left unset. A *bool is
// only unset when nil, so pass_filenames=false survives the merge.
func isZero(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case []string:
		return len(v) == 0
	case map[string]string:
		return len(v) == 0
	case *bool:
		return v == nil
	default:
		return false
	}
}
