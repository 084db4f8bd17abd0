package catalogue

import (
	"bytes"
	_ "embed"
	stdErrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultPath is the name reported for the embedded catalogue.
const DefaultPath = "<embedded>/default.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default returns the catalogue embedded in the binary.
func Default() (*Catalogue, error) {
	return Parse(DefaultPath, defaultYAML)
}

// Load reads, decodes and validates the catalogue at path. An empty path
// selects the embedded default.
func Load(path string, log *logger.Logger) (*Catalogue, error) {
	if strings.TrimSpace(path) == "" {
		log.Debug("using embedded catalogue")
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(err, "read catalogue")
		return nil, showcaseerrors.NewParseError(path, 0, err)
	}

	cat, err := Parse(path, data)
	if err != nil {
		log.Error(err, "catalogue rejected")
		return nil, err
	}

	log.WithFields(map[string]any{
		"path":     path,
		"alerts":   len(cat.Alerts),
		"toasts":   len(cat.Toasts),
		"sections": len(cat.Sections),
	}).Info("catalogue loaded")
	return cat, nil
}

// Parse decodes data in the format implied by path's extension and validates
// the result.
func Parse(path string, data []byte) (*Catalogue, error) {
	var cat Catalogue

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cat); err != nil {
			return nil, showcaseerrors.NewParseError(path, yamlLine(err), err)
		}
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cat)
		if err != nil {
			return nil, showcaseerrors.NewParseError(path, tomlLine(err), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, showcaseerrors.NewParseError(path, 0, fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	default:
		return nil, showcaseerrors.NewParseError(path, 0, fmt.Errorf("unsupported catalogue extension %q", ext))
	}

	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if stdErrors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}
