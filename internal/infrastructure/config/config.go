package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/davarch/launch-schedule/internal/application"
	"github.com/davarch/launch-schedule/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk config.yaml. Display.ReducedLarge applies the desktop
// widget's large capacity; Display.Capacities overrides single tiers after it.
type Config struct {
	API struct {
		BaseURL string        `yaml:"base_url"`
		Limit   int           `yaml:"limit"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"api"`

	Display struct {
		Tier         string         `yaml:"tier"`
		DateOrder    string         `yaml:"date_order"`
		Timezone     string         `yaml:"timezone,omitempty"`
		ReducedLarge bool           `yaml:"reduced_large,omitempty"`
		Capacities   map[string]int `yaml:"capacities,omitempty"`
	} `yaml:"display"`

	Poll struct {
		Interval  time.Duration `yaml:"interval"`
		PauseFile string        `yaml:"pause_file"`
		Notify    bool          `yaml:"notify"`
		Icon      string        `yaml:"icon,omitempty"`
	} `yaml:"poll"`

	Snapshot struct {
		Path string `yaml:"path"`
	} `yaml:"snapshot"`
}

func Load(path string) (Config, error) {
	var c Config

	c.API.BaseURL = "https://ll.thespacedevs.com/2.2.0"
	c.API.Limit = 10
	c.API.Timeout = 10 * time.Second
	c.Display.Tier = string(domain.TierMedium)
	c.Display.DateOrder = string(domain.DayMonthFirst)
	c.Poll.Interval = 15 * time.Minute
	c.Poll.Notify = true
	c.Snapshot.Path = expandHome("~/.cache/launch_schedule.json")

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, fmt.Errorf("parse %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return c, err
		}
	}

	if v := os.Getenv("LAUNCH_API_URL"); v != "" {
		c.API.BaseURL = v
	}

	if v := os.Getenv("LAUNCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.API.Limit = n
		}
	}

	if v := os.Getenv("LAUNCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.API.Timeout = d
		}
	}

	if v := os.Getenv("LAUNCH_TIER"); v != "" {
		c.Display.Tier = v
	}

	if v := os.Getenv("LAUNCH_DATE_ORDER"); v != "" {
		c.Display.DateOrder = v
	}

	if v := os.Getenv("LAUNCH_TIMEZONE"); v != "" {
		c.Display.Timezone = v
	}

	if v := os.Getenv("INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Poll.Interval = d
		}
	}

	if v := os.Getenv("SNAPSHOT_PATH"); v != "" {
		c.Snapshot.Path = v
	}

	c.Snapshot.Path = expandHome(c.Snapshot.Path)
	c.Poll.PauseFile = expandHome(c.Poll.PauseFile)
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://ll.thespacedevs.com/2.2.0"
	}

	if c.API.Limit <= 0 {
		c.API.Limit = 10
	}

	if c.API.Timeout <= 0 {
		c.API.Timeout = 10 * time.Second
	}

	if c.Poll.Interval <= 0 {
		c.Poll.Interval = 15 * time.Minute
	}

	if c.Poll.PauseFile == "" {
		c.Poll.PauseFile = expandHome("~/.cache/launch_schedule_paused")
	}

	return c, nil
}

// ComposerConfig builds the tier table from the display section. The tier
// itself is not validated here; an unknown tier surfaces at compose time.
func (c Config) ComposerConfig() (application.ComposerConfig, error) {
	cc := application.DefaultComposerConfig()
	if c.Display.ReducedLarge {
		cc = cc.WithReducedLarge()
	}

	for name, capacity := range c.Display.Capacities {
		t, err := domain.ParseTier(name)
		if err != nil {
			return cc, fmt.Errorf("capacities: %w", err)
		}
		cc = cc.WithCapacity(t, capacity)
	}

	order, err := domain.ParseDateOrder(c.Display.DateOrder)
	if err != nil {
		return cc, err
	}
	cc.DateOrder = order

	if c.Display.Timezone != "" {
		loc, err := time.LoadLocation(c.Display.Timezone)
		if err != nil {
			return cc, fmt.Errorf("timezone: %w", err)
		}
		cc.Location = loc
	}

	return cc, nil
}

// SetValue rewrites one scalar in the config file at the given key path,
// creating the file and intermediate mappings when missing. Only the raw file
// is edited: env overrides and defaults never reach disk, and comments are
// kept.
func SetValue(path, value string, keys ...string) error {
	if path == "" {
		return errors.New("empty config path")
	}
	if len(keys) == 0 {
		return errors.New("empty key path")
	}

	var doc yaml.Node
	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if len(bytes.TrimSpace(b)) > 0 {
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}

	node := doc.Content[0]
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: top level is not a mapping", path)
	}

	for i, k := range keys {
		last := i == len(keys)-1
		child := lookup(node, k)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, child)
		}

		if last {
			*child = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, LineComment: child.LineComment}
			break
		}
		if child.Kind != yaml.MappingNode {
			return fmt.Errorf("%s: %s is not a mapping", path, strings.Join(keys[:i+1], "."))
		}
		node = child
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return writeLocked(path, buf.Bytes())
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func writeLocked(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lockFile := path + ".lock"
	lf, err := os.OpenFile(lockFile, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = lf.Close() }()

	if runtime.GOOS != "windows" {
		if err := syscall.Flock(int(lf.Fd()), syscall.LOCK_EX); err != nil {
			return err
		}
		defer func() { _ = syscall.Flock(int(lf.Fd()), syscall.LOCK_UN) }()
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	if _, err := f.Write(b); err != nil {
		return err
	}

	if err := f.Sync(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if h, _ := os.UserHomeDir(); h != "" {
			return h + p[1:]
		}
	}
	return p
}
