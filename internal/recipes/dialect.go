package recipes

import (
	"fmt"
	"maps"
	"strings"
)

// Dialect identifies a family of classic assertions.
type Dialect int

const (
	dialectInvalid Dialect = iota

	// DialectClassic is the general purpose family: Assert.AreEqual, Assert.IsTrue, etc.
	DialectClassic

	// DialectCollection is CollectionAssert.
	DialectCollection

	// DialectString is StringAssert.
	DialectString

	// DialectFile is FileAssert and DirectoryAssert.
	DialectFile
)

var dialectValueMap = map[Dialect]string{
	DialectClassic:    "classic",
	DialectCollection: "collection",
	DialectString:     "string",
	DialectFile:       "file",
}

func (d Dialect) String() string {
	v, ok := dialectValueMap[d]
	if !ok {
		return fmt.Sprintf("invalid(%d)", d)
	}

	return v
}

// MarshalText to render dialects in configs.
func (d Dialect) MarshalText() ([]byte, error) {
	v, ok := dialectValueMap[d]
	if !ok {
		return nil, fmt.Errorf("invalid dialect %d", d)
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (d *Dialect) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range dialectValueMap {
		if v == text {
			*d = k
			return nil
		}
	}

	return fmt.Errorf("unknown assertion dialect %q", text)
}

var predefinedReceivers = map[string]Dialect{
	"Assert":           DialectClassic,
	"ClassicAssert":    DialectClassic,
	"CollectionAssert": DialectCollection,
	"StringAssert":     DialectString,
	"FileAssert":       DialectFile,
	"DirectoryAssert":  DialectFile,
}

// Receivers returns the receiver names recognized by default, each mapped to its dialect.
func Receivers() map[string]Dialect {
	return maps.Clone(predefinedReceivers)
}

// Key identifies a recipe.
type Key struct {
	Dialect Dialect
	Method  string
}

// String renders a key as "dialect.Method".
func (k Key) String() string {
	return k.Dialect.String() + "." + k.Method
}

// MarshalText renders a key for configs.
func (k Key) MarshalText() ([]byte, error) {
	if _, err := k.Dialect.MarshalText(); err != nil {
		return nil, err
	}

	return []byte(k.String()), nil
}

// UnmarshalText parses "dialect.Method".
func (k *Key) UnmarshalText(rawtext []byte) error {
	dialect, method, ok := strings.Cut(string(rawtext), ".")
	if !ok || method == "" {
		return fmt.Errorf("recipe key %q must look like dialect.Method", rawtext)
	}

	var d Dialect
	if err := d.UnmarshalText([]byte(dialect)); err != nil {
		return fmt.Errorf("recipe key %q: %w", rawtext, err)
	}

	k.Dialect = d
	k.Method = method
	return nil
}
