package config

import (
	"flag"
	"os"
	"time"

	"github.com/dangtv/coinclub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     base URL of the backend server
//	-d string     path of the client database
//	-i int        sync watcher poll interval in seconds
//	-ref string   invite link to capture a referral code from
//
// os.Args is filtered to just these flags via flagx.FilterArgs so this
// parser doesn't trip over flags owned by other components.
func parseFlags(cfg *Config) {
	parseFlagArgs(cfg, flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i", "-ref"}))
}

func parseFlagArgs(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "address of the backend server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the client database")
	interval := fs.Int("i", int(cfg.SyncPollInterval.Seconds()), "sync poll interval (in seconds)")
	fs.StringVar(&cfg.InviteLink, "ref", cfg.InviteLink, "invite link carrying a referral code")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SyncPollInterval = time.Duration(*interval) * time.Second
}
