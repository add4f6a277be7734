package notify_libnotify

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const appName = "launch-schedule"

type Options struct {
	Urgency string
	Expire  time.Duration
	Icon    string
}

// Notifier shells out to notify-send. A soft notifier swallows failures so a
// missing notification daemon never breaks a refresh.
type Notifier struct {
	soft bool
	opts Options
	bin  string
}

func New(opts Options) *Notifier     { return &Notifier{opts: opts, bin: "notify-send"} }
func NewSoft(opts Options) *Notifier { return &Notifier{soft: true, opts: opts, bin: "notify-send"} }

func (n *Notifier) Notify(ctx context.Context, title, body, url string) error {
	return n.NotifyWith(ctx, title, body, url, n.opts)
}

func (n *Notifier) NotifyWith(ctx context.Context, title, body, url string, opt Options) error {
	cmd := exec.CommandContext(ctx, n.bin, args(title, body, url, opt)...)
	if err := cmd.Run(); err != nil {
		if n.soft {
			return nil
		}
		return err
	}

	return nil
}

func args(title, body, url string, opt Options) []string {
	if strings.TrimSpace(url) != "" {
		if body == "" {
			body = url
		} else {
			body = body + "\n" + url
		}
	}

	out := []string{"--app-name=" + appName}
	if opt.Urgency != "" {
		out = append(out, "--urgency="+opt.Urgency)
	}
	if opt.Expire > 0 {
		ms := strconv.Itoa(int(opt.Expire / time.Millisecond))
		out = append(out, "--expire-time="+ms)
	}
	if opt.Icon != "" {
		out = append(out, "--icon="+opt.Icon)
	}
	return append(out, title, body)
}
