package areatracker

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ConfigFile is the name of the map configuration file inside a data
// directory. Every other *.txt file in the directory is a region.
const ConfigFile = "All.conf"

// ConfigError is a malformed line in the map configuration. The line is
// skipped and loading continues.
type ConfigError struct {
	Line int
	Msg  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("map configuration: line %d: %s", e.Line, e.Msg)
}

// RegionError is a region file that could not be loaded. The region is
// skipped and loading continues.
type RegionError struct {
	File string
	// Line is 0 for errors that concern the whole file.
	Line int
	Msg  string
}

func (e *RegionError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.File, e.Msg)
	}
	return fmt.Sprintf("%s: line %d: %s", e.File, e.Line, e.Msg)
}

// LoadResult is everything read from a data directory. Errors lists the
// records that were skipped; Warnings is the missing-resource batch.
type LoadResult struct {
	Config   MapConfig
	Palette  *Palette
	Regions  *RegionSet
	Errors   []error
	Warnings []string
}

// Config is the parsed map configuration plus which settings were present.
type Config struct {
	MapConfig
	Areas  []Colors
	Bosses []Colors

	seen map[string]bool
}

// Has reports whether keyword appeared in the configuration.
func (c *Config) Has(keyword string) bool {
	return c.seen[keyword]
}

// LoadDir loads the map configuration and every region file in dir. Only a
// missing or unreadable configuration file, or one that leaves the canvas
// without a width or height, is fatal; bad records are reported in the
// result and skipped.
func LoadDir(dir string) (*LoadResult, error) {
	f, err := os.Open(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("areatracker: open map configuration: %w", err)
	}
	cfg, cfgErrs, err := ParseConfig(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("areatracker: read map configuration: %w", err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs := []error{fmt.Errorf("areatracker: map configuration: canvas size %dx%d: MapWidth and MapHeight are required", cfg.Width, cfg.Height)}
		for _, e := range cfgErrs {
			errs = append(errs, e)
		}
		return nil, errors.Join(errs...)
	}

	res := &LoadResult{Config: cfg.MapConfig}
	for _, e := range cfgErrs {
		res.Errors = append(res.Errors, e)
	}

	res.Palette = NewPalette(cfg.SelfLinkColor)
	for _, c := range cfg.Areas {
		res.Palette.AddArea(c)
	}
	for _, c := range cfg.Bosses {
		res.Palette.AddBoss(c)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("areatracker: list region files: %w", err)
	}
	sort.Strings(files)

	var bosses, areas []*Region
	for _, path := range files {
		r, err := loadRegionFile(path, cfg.Width, cfg.Height)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		if r.IsBoss() {
			bosses = append(bosses, r)
		} else {
			areas = append(areas, r)
		}
	}

	res.Regions, err = NewRegionSet(bosses, areas)
	if err != nil {
		return nil, err
	}
	res.Warnings = missingData(cfg, res.Palette, res.Regions)

	log := logger.WithField("dir", dir)
	for _, e := range res.Errors {
		log.WithError(e).Warn("skipped record")
	}
	log.WithFields(logrus.Fields{
		"bosses":   res.Regions.BossCount(),
		"areas":    res.Regions.Len() - res.Regions.BossCount(),
		"errors":   len(res.Errors),
		"warnings": len(res.Warnings),
	}).Info("map loaded")
	return res, nil
}

// ParseConfig reads the map configuration. Each line is a keyword and its
// comma separated values; '#' starts a comment. Malformed lines are
// returned as ConfigErrors and do not stop parsing.
func ParseConfig(r io.Reader) (*Config, []*ConfigError, error) {
	cfg := &Config{seen: make(map[string]bool)}
	var errs []*ConfigError

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := stripComment(sc.Text())
		if line == "" {
			continue
		}
		keyword, rest, _ := strings.Cut(line, ",")
		keyword = strings.TrimSpace(keyword)
		rest = strings.TrimSpace(rest)
		if err := cfg.apply(keyword, rest); err != "" {
			errs = append(errs, &ConfigError{Line: n, Msg: err})
			continue
		}
		cfg.seen[keyword] = true
	}
	if err := sc.Err(); err != nil {
		return nil, errs, err
	}
	return cfg, errs, nil
}

func (c *Config) apply(keyword, value string) string {
	switch keyword {
	case "Area", "Boss":
		name, colors, ok := strings.Cut(value, ",")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Sprintf("%s name not found", strings.ToLower(keyword))
		}
		fillHex, textHex, ok := strings.Cut(colors, ",")
		if !ok {
			return fmt.Sprintf("invalid colors (%s)", colors)
		}
		fill, err1 := parseHexColor(fillHex)
		text, err2 := parseHexColor(textHex)
		if err1 != nil || err2 != nil {
			return fmt.Sprintf("invalid colors (%s)", colors)
		}
		entry := Colors{Name: name, FillColor: fill, TextBackgroundColor: text}
		if keyword == "Boss" {
			c.Bosses = append(c.Bosses, entry)
		} else {
			c.Areas = append(c.Areas, entry)
		}

	case "BackgroundColor", "BorderColor", "SelfLinkColor":
		col, err := parseHexColor(value)
		if err != nil {
			return fmt.Sprintf("invalid color (%s)", value)
		}
		switch keyword {
		case "BackgroundColor":
			c.BackgroundColor = col
		case "BorderColor":
			c.BorderColor = col
		default:
			c.SelfLinkColor = col
		}

	case "AreaFontSize", "BossFontSize", "MapWidth", "MapHeight", "MapMargin", "BorderSize":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Sprintf("invalid value (%s)", value)
		}
		switch keyword {
		case "MapWidth", "MapHeight", "BorderSize":
			if v <= 0 {
				return fmt.Sprintf("%s (%d) must be positive", keyword, v)
			}
		case "MapMargin":
			if v < 0 {
				return fmt.Sprintf("%s (%d) must not be negative", keyword, v)
			}
		}
		switch keyword {
		case "AreaFontSize":
			c.AreaFontSize = v
		case "BossFontSize":
			c.BossFontSize = v
		case "MapWidth":
			c.Width = v
		case "MapHeight":
			c.Height = v
		case "MapMargin":
			c.Margin = v
		default:
			c.BorderSize = v
		}

	default:
		return fmt.Sprintf("invalid keyword (%s)", keyword)
	}
	return ""
}

// parseHexColor parses an RRGGBB hex value. The result is always opaque.
func parseHexColor(s string) (color.RGBA, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func loadRegionFile(path string, width, height int) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RegionError{File: path, Msg: err.Error()}
	}
	defer f.Close()
	return ParseRegion(filepath.Base(path), f, width, height)
}

// ParseRegion reads one region file. The file name decides the variant,
// group, and display name (see ParseRegionName); each non-blank line is an
// "x,y" vertex inside the canvas.
func ParseRegion(filename string, r io.Reader, width, height int) (*Region, error) {
	variant, group, name, err := ParseRegionName(filename)
	if err != nil {
		return nil, err
	}

	var pts []image.Point
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := stripComment(sc.Text())
		if line == "" {
			continue
		}
		p, msg := parsePoint(line, width, height)
		if msg != "" {
			return nil, &RegionError{File: filename, Line: n, Msg: msg}
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, &RegionError{File: filename, Msg: err.Error()}
	}
	if len(pts) < 3 {
		return nil, &RegionError{File: filename, Msg: "there must be at least three coordinates in each polygon"}
	}

	reg, err := NewRegion(variant, group, name, pts, width, height)
	if err != nil {
		return nil, &RegionError{File: filename, Msg: err.Error()}
	}
	return reg, nil
}

func parsePoint(line string, width, height int) (image.Point, string) {
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return image.Point{}, fmt.Sprintf("invalid data (%s)", line)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Sprintf("invalid x coordinate (%s)", xs)
	}
	if x < 0 || x >= width {
		return image.Point{}, fmt.Sprintf("x coordinate (%d) must be in [0,%d)", x, width)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Sprintf("invalid y coordinate (%s)", ys)
	}
	if y < 0 || y >= height {
		return image.Point{}, fmt.Sprintf("y coordinate (%d) must be in [0,%d)", y, height)
	}
	return image.Pt(x, y), ""
}

// ParseRegionName splits a region file name such as "Forest Dark Woods.txt"
// into its group ("Forest") and display name ("Dark\nWoods"). A single word
// is both group and name. The group "Boss" makes a boss region.
func ParseRegionName(filename string) (v Variant, group, name string, err error) {
	base, ok := strings.CutSuffix(filename, ".txt")
	base = strings.TrimSpace(base)
	if !ok || base == "" {
		return 0, "", "", &RegionError{File: filename, Msg: "invalid file name"}
	}
	group, rest, found := strings.Cut(base, " ")
	rest = strings.TrimSpace(rest)
	if !found || rest == "" {
		name = group
	} else {
		name = strings.Join(strings.Fields(rest), "\n")
	}
	if group == "Boss" {
		v = VariantBoss
	}
	return v, group, name, nil
}

// missingData builds the missing-resource batch reported once after load.
func missingData(cfg *Config, p *Palette, regions *RegionSet) []string {
	var warnings []string

	var areas, bosses []string
	seen := make(map[string]bool)
	for _, r := range regions.All() {
		if r.IsBoss() {
			if _, ok := p.Boss(r.Name); !ok && !seen["b"+r.Name] {
				seen["b"+r.Name] = true
				bosses = append(bosses, strings.ReplaceAll(r.Name, "\n", " "))
			}
			continue
		}
		if _, ok := p.Area(r.Group); !ok && !seen["a"+r.Group] {
			seen["a"+r.Group] = true
			areas = append(areas, r.Group)
		}
	}
	if len(areas) > 0 {
		warnings = append(warnings, "missing area colors: "+strings.Join(areas, ", "))
	}
	if len(bosses) > 0 {
		warnings = append(warnings, "missing boss colors: "+strings.Join(bosses, ", "))
	}

	for _, k := range []struct{ keyword, msg string }{
		{"AreaFontSize", "missing area font size"},
		{"BossFontSize", "missing boss font size"},
		{"BackgroundColor", "missing background color"},
		{"BorderColor", "missing border color"},
		{"SelfLinkColor", "missing self link color"},
		{"MapMargin", "missing map margin"},
		{"BorderSize", "missing border size"},
	} {
		if !cfg.Has(k.keyword) {
			warnings = append(warnings, k.msg)
		}
	}
	return warnings
}
