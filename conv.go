package jdict

import "github.com/spf13/cast"

// GetString returns the value under key coerced to a string. A missing
// key fails with a *KeyError; an uncoercible value fails with the cast
// error.
func (d *Dict) GetString(key string) (string, error) {
	v, err := d.Get(key)
	if err != nil {
		return "", err
	}
	return cast.ToStringE(v)
}

// GetInt returns the value under key coerced to an int.
func (d *Dict) GetInt(key string) (int, error) {
	v, err := d.Get(key)
	if err != nil {
		return 0, err
	}
	return cast.ToIntE(v)
}

// GetFloat64 returns the value under key coerced to a float64.
func (d *Dict) GetFloat64(key string) (float64, error) {
	v, err := d.Get(key)
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

// GetBool returns the value under key coerced to a bool.
func (d *Dict) GetBool(key string) (bool, error) {
	v, err := d.Get(key)
	if err != nil {
		return false, err
	}
	return cast.ToBoolE(v)
}
