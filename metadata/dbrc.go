package metadata

import (
	"bufio"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DBRCEntry is one line of a .dbrc credentials file:
//
//	server database user password alias
type DBRCEntry struct {
	Server   string
	Database string
	User     string
	Password string
	Alias    string
}

// DSN returns a PostgreSQL connection URL for the entry.
func (e DBRCEntry) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(e.User, e.Password),
		Host:   e.Server,
		Path:   "/" + e.Database,
	}
	return u.String()
}

// LookupDBRC returns the entry for alias from the .dbrc file at path.
func LookupDBRC(path, alias string) (DBRCEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return DBRCEntry{}, errors.Wrap(err, "open dbrc")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		items := strings.Fields(scanner.Text())
		if len(items) != 5 || strings.HasPrefix(items[0], "#") || items[4] != alias {
			continue
		}
		return DBRCEntry{
			Server:   items[0],
			Database: items[1],
			User:     items[2],
			Password: items[3],
			Alias:    items[4],
		}, nil
	}
	if err := scanner.Err(); err != nil {
		return DBRCEntry{}, errors.Wrap(err, "read dbrc")
	}
	return DBRCEntry{}, errors.Wrapf(ErrAliasNotFound, "%s in %s", alias, path)
}
