// Package envfile reads and writes dotenv files as ordered mappings.
//
// Parsing is delegated to godotenv, so comments, blank lines, export
// prefixes, and quoted values all behave the way every other dotenv
// consumer expects. On top of that this package preserves the order keys
// appear in the file, which godotenv's map output discards.
//
// Writing always produces the canonical form, one variable per line:
//
//	KEY="value"
//
// Interior double quotes are not representable in this form and are
// stripped on write. Writes are atomic: content lands in a temp file that
// is renamed over the target, so a crash never leaves a half-written env
// file behind.
package envfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Marian1309/vercel-env/pkg/constants"
	"github.com/Marian1309/vercel-env/pkg/envs"
	"github.com/Marian1309/vercel-env/pkg/errors"
)

// Parse decodes dotenv content into an ordered mapping. Key order follows
// first appearance in the content. Duplicate keys keep the first position
// and godotenv's last-wins value.
func Parse(data []byte) (*envs.Mapping, error) {
	parsed, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, errors.WrapParse("env", "", err)
	}

	mapping := envs.NewMapping()
	for _, key := range keyOrder(data, parsed) {
		mapping.Set(key, envs.Known(parsed[key]))
	}
	return mapping, nil
}

// Read loads and parses the env file at path.
func Read(path string) (*envs.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	mapping, err := Parse(data)
	if err != nil {
		return nil, errors.NewParseError("env", path, err.Error(), err)
	}
	return mapping, nil
}

// Marshal renders the mapping in canonical KEY="value" form, one line per
// key in mapping order. Opaque and absent values are skipped since they
// have no content to persist. Double quotes inside values are stripped.
func Marshal(m *envs.Mapping) []byte {
	var b strings.Builder
	for _, key := range m.Keys() {
		content, ok := m.Get(key).Content()
		if !ok {
			continue
		}
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(content, `"`, ""))
		b.WriteString("\"\n")
	}
	return []byte(b.String())
}

// Write atomically replaces the env file at path with the canonical form
// of mapping. The parent directory is created if needed.
func Write(path string, m *envs.Mapping) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	// CreateTemp opens the file 0600, which is exactly what a secrets file
	// should carry after the rename.
	tmp, err := os.CreateTemp(dir, ".env_*.tmp")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(Marshal(m)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("close", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// keyOrder recovers the order keys first appear in data. Only keys that
// godotenv actually parsed count; anything else on a line is noise from a
// comment or a multiline value. Parsed keys that the scan misses are
// appended at the end so no variable is ever dropped.
func keyOrder(data []byte, parsed map[string]string) []string {
	seen := make(map[string]bool, len(parsed))
	order := make([]string, 0, len(parsed))

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		if _, ok := parsed[key]; !ok || seen[key] {
			continue
		}
		seen[key] = true
		order = append(order, key)
	}

	if len(order) < len(parsed) {
		missing := make([]string, 0, len(parsed)-len(order))
		for key := range parsed {
			if !seen[key] {
				missing = append(missing, key)
			}
		}
		// Deterministic placement for keys the scan could not locate.
		for i := 1; i < len(missing); i++ {
			for j := i; j > 0 && missing[j] < missing[j-1]; j-- {
				missing[j], missing[j-1] = missing[j-1], missing[j]
			}
		}
		order = append(order, missing...)
	}
	return order
}
