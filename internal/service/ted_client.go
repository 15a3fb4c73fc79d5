package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/tedsearch/tedsearch/internal/config"
)

// ftpDateDir is the layout of the per-month directory on the TED FTP server.
const ftpDateDir = "daily-packages/2006/01"

// TEDClient retrieves daily package archives from the TED FTP server. A fresh
// connection is dialed per call; packages are published once a day and the
// server drops idle sessions anyway.
type TEDClient struct {
	cfg *config.Config
}

// NewTEDClient creates a TEDClient.
func NewTEDClient(cfg *config.Config) *TEDClient {
	return &TEDClient{cfg: cfg}
}

// CheckDailyPackage looks for the archive published for the given date and
// returns its file name. Daily package names start with the YYYYMMDD
// publication date. An empty name means no package has been published yet.
func (c *TEDClient) CheckDailyPackage(ctx context.Context, date time.Time) (string, error) {
	conn, err := c.dial(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Quit()

	entries, err := conn.List(date.Format(ftpDateDir))
	if err != nil {
		return "", fmt.Errorf("list daily packages: %w", err)
	}

	prefix := date.Format("20060102")
	for _, entry := range entries {
		if entry.Type == ftp.EntryTypeFile && strings.HasPrefix(entry.Name, prefix) {
			return entry.Name, nil
		}
	}
	return "", nil
}

// RetrieveDailyPackage downloads the named archive into destDir and returns
// the local path.
func (c *TEDClient) RetrieveDailyPackage(ctx context.Context, fileName, destDir string) (string, error) {
	conn, err := c.dial(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Quit()

	date, err := time.Parse("20060102", fileName[:8])
	if err != nil {
		return "", fmt.Errorf("bad package name %q: %w", fileName, err)
	}

	resp, err := conn.Retr(path.Join(date.Format(ftpDateDir), fileName))
	if err != nil {
		return "", fmt.Errorf("retrieve %q: %w", fileName, err)
	}
	defer resp.Close()

	localPath := filepath.Join(destDir, fileName)
	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", localPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp); err != nil {
		os.Remove(localPath)
		return "", fmt.Errorf("download %q: %w", fileName, err)
	}
	return localPath, nil
}

func (c *TEDClient) dial(ctx context.Context) (*ftp.ServerConn, error) {
	conn, err := ftp.Dial(c.cfg.FTP.Addr, ftp.DialWithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("dial TED FTP: %w", err)
	}
	if err := conn.Login(c.cfg.FTP.User, c.cfg.FTP.Password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("login to TED FTP: %w", err)
	}
	return conn, nil
}
