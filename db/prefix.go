package db

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

// DefaultPrefix mirrors the column default in the prefixes table. Guilds
// without a stored row use it, and "prefix reset" falls back to it.
const DefaultPrefix = "!"

// HasPrefixTable reports whether this deployment's database has a prefixes
// table at all. A bot pointed at an externally managed database may not have
// one, in which case the prefix commands are unavailable.
func (db *DB) HasPrefixTable() (ok bool, err error) {
	err = db.QueryRow(context.Background(),
		"select exists (select from information_schema.tables where table_name = 'prefixes')").Scan(&ok)
	return ok, err
}

// Prefix returns the guild's custom prefix, or DefaultPrefix if it has none.
// The stored value is not re-validated here; writes go through the prefix
// converter, which is what enforces the length constraint.
func (db *DB) Prefix(id discord.GuildID) (prefix string, err error) {
	sql, args, err := sq.Select("prefix").From("prefixes").Where("server_id = ?", id).ToSql()
	if err != nil {
		return "", errors.Wrap(err, "building query")
	}

	err = db.QueryRow(context.Background(), sql, args...).Scan(&prefix)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultPrefix, nil
	}
	return prefix, err
}

// SetPrefix sets the guild's custom prefix, overwriting any existing one.
func (db *DB) SetPrefix(id discord.GuildID, prefix string) (err error) {
	sql, args, err := sq.Insert("prefixes").
		Columns("server_id", "prefix").
		Values(id, prefix).
		Suffix("on conflict (server_id) do update set prefix = excluded.prefix").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building query")
	}

	_, err = db.Exec(context.Background(), sql, args...)
	return err
}

// ResetPrefix deletes the guild's prefix row, then recreates a bare row
// carrying the column default, the same effect as never having set one.
func (db *DB) ResetPrefix(id discord.GuildID) (err error) {
	_, err = db.Exec(context.Background(), "delete from prefixes where server_id = $1", id)
	if err != nil {
		return err
	}

	_, err = db.Exec(context.Background(), "insert into prefixes (server_id) values ($1)", id)
	return err
}

// GuildPrefix is a single guild's stored prefix.
type GuildPrefix struct {
	ServerID discord.GuildID
	Prefix   string
}

// Prefixes returns every guild with a stored prefix, ordered by guild ID.
func (db *DB) Prefixes() (ps []GuildPrefix, err error) {
	err = pgxscan.Select(context.Background(), db, &ps, "select server_id, prefix from prefixes order by server_id")
	return ps, err
}

// PrefixCount returns the number of guilds with a stored prefix.
func (db *DB) PrefixCount() (n int64, err error) {
	err = db.QueryRow(context.Background(), "select count(*) from prefixes").Scan(&n)
	return n, err
}
