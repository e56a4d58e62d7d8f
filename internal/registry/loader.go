package registry

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sevanssp/avm/internal/logger"
)

// AppDataEnv is the environment variable holding the user application data
// directory on Windows.
const AppDataEnv = "APPDATA"

// registrySubpath is where Application Version Manager keeps its document,
// relative to the application data directory.
var registrySubpath = filepath.Join("DNVGL", "ApplicationVersionManager", "ApplicationVersions.xml")

// DefaultPath returns the conventional location of ApplicationVersions.xml.
// It fails with a NotFoundError when APPDATA is unset, since no default can
// be derived without it.
func DefaultPath() (string, error) {
	appData := os.Getenv(AppDataEnv)
	if appData == "" {
		return "", &NotFoundError{Reason: fmt.Sprintf("environment variable %s is not set", AppDataEnv)}
	}
	return filepath.Join(appData, registrySubpath), nil
}

// Load reads and parses the registry document at path. An empty path falls
// back to DefaultPath. The file is opened read-only and closed before Load
// returns; the resulting Registry holds no reference to it.
func Load(path string) (*Registry, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			logger.Error().Err(err).Msg("unable to locate registry document")
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		logger.Error().Str("path", path).Msg("registry document does not exist")
		return nil, &NotFoundError{Path: path, Reason: "file does not exist"}
	}
	logger.Debug().Str("path", path).Msg("loading registry document")

	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Reason: err.Error()}
	}
	defer f.Close()

	reg, err := Parse(f)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to parse registry document")
		return nil, &ParseError{Path: path, Err: err}
	}

	logger.Debug().Str("path", path).Int("applications", reg.Len()).Msg("registry loaded")
	return reg, nil
}

// xmlApplication mirrors an <Application> element. Absent attributes decode
// as empty strings rather than errors; the document is trusted.
type xmlApplication struct {
	Name     string       `xml:"Name,attr"`
	Versions []xmlVersion `xml:"Version"`
}

type xmlVersion struct {
	VersionNumber string `xml:"VersionNumber,attr"`
	ExeFilePath   string `xml:"ExeFilePath,attr"`
	InstallDir    string `xml:"InstallDir,attr"`
	Platform      string `xml:"Platform,attr"`
	ProductType   string `xml:"ProductType,attr"`
	Category      string `xml:"Category,attr"`
	IsDefault     string `xml:"IsDefault,attr"`
}

// Parse decodes a registry document from r. Application elements are
// collected wherever they appear in the tree, preserving document order at
// both the application and version level. Names and version numbers are
// lowercased so later lookups are case-insensitive.
func Parse(r io.Reader) (*Registry, error) {
	dec := xml.NewDecoder(r)
	reg := newRegistry()
	sawRoot := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if start.Name.Local != "Application" {
			continue
		}

		var app xmlApplication
		if err := dec.DecodeElement(&app, &start); err != nil {
			return nil, err
		}
		reg.add(app.Name, parseVersions(app))
	}

	if !sawRoot {
		return nil, errors.New("document has no root element")
	}
	return reg, nil
}

func parseVersions(app xmlApplication) []Version {
	versions := make([]Version, 0, len(app.Versions))
	for _, v := range app.Versions {
		rec := Version{
			Number:      strings.ToLower(v.VersionNumber),
			ExePath:     v.ExeFilePath,
			InstallDir:  v.InstallDir,
			Default:     strings.ToLower(v.IsDefault) == "true",
			Platform:    v.Platform,
			ProductType: v.ProductType,
			Category:    v.Category,
		}
		logger.Debug().
			Str("app", strings.ToLower(app.Name)).
			Str("version", rec.Number).
			Bool("default", rec.Default).
			Msg("registered version")
		versions = append(versions, rec)
	}
	return versions
}
