package resource

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"io/ioutil"

	_ "github.com/mattn/go-sqlite3"
)

// Pack is an asset archive stored in a SQLite database.
type Pack struct {
	db *sql.DB
}

func OpenPack(file string) (*Pack, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (name TEXT PRIMARY KEY NOT NULL, method INTEGER NOT NULL, size INTEGER NOT NULL, data BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Pack{
		db: db,
	}, nil
}

func (p *Pack) Close() error {
	return p.db.Close()
}

// Import stores the contents of r as name, replacing any previous asset
// with that name.
func (p *Pack) Import(name string, r io.Reader, method CompressionMethod) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	data, err := compress(method, b)
	if err != nil {
		return err
	}

	if _, err := p.db.Exec("INSERT OR REPLACE INTO asset (name, method, size, data) VALUES (?, ?, ?, ?)", cleanName(name), method, len(b), data); err != nil {
		return err
	}
	return nil
}

func (p *Pack) Open(name string) (io.ReadCloser, error) {
	var (
		method CompressionMethod
		size   int
		data   []byte
	)

	switch err := p.db.QueryRow("SELECT method, size, data FROM asset WHERE name = ?", cleanName(name)).Scan(&method, &size, &data); err {
	case nil:
	case sql.ErrNoRows:
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	default:
		return nil, err
	}

	b, err := decompress(method, data, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ioutil.NopCloser(bytes.NewReader(b)), nil
}

// Names lists every asset in the pack in name order.
func (p *Pack) Names() ([]string, error) {
	rows, err := p.db.Query("SELECT name FROM asset ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
