package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the full DDL for the gym back office. Statements are idempotent
// so Migrate can run on every startup.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id            uuid PRIMARY KEY,
	email         text NOT NULL,
	name          text NOT NULL,
	role          text NOT NULL,
	status        text NOT NULL,
	password_hash text NOT NULL,
	created_at    timestamptz NOT NULL,
	updated_at    timestamptz NOT NULL,
	CONSTRAINT accounts_email_unique UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS members (
	id             uuid PRIMARY KEY,
	name           text NOT NULL,
	email          text NOT NULL,
	phone          text NOT NULL DEFAULT '',
	address        text NOT NULL DEFAULT '',
	join_date      date NOT NULL,
	status         text NOT NULL,
	role           text NOT NULL,
	package_id     uuid,
	package_name   text,
	package_amount double precision,
	assigned_at    timestamptz,
	created_at     timestamptz NOT NULL,
	updated_at     timestamptz NOT NULL,
	CONSTRAINT members_email_unique UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS activity_logs (
	id              uuid PRIMARY KEY,
	user_identifier text NOT NULL,
	action          text NOT NULL,
	details         varchar(2000) NOT NULL,
	created_at      timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS activity_logs_created_at_idx ON activity_logs (created_at DESC);

CREATE TABLE IF NOT EXISTS fee_packages (
	id              uuid PRIMARY KEY,
	name            text NOT NULL,
	amount          double precision NOT NULL,
	duration_months integer NOT NULL,
	description     text NOT NULL DEFAULT '',
	created_at      timestamptz NOT NULL,
	CONSTRAINT fee_packages_name_unique UNIQUE (name)
);

CREATE TABLE IF NOT EXISTS bills (
	id          uuid PRIMARY KEY,
	member_id   uuid NOT NULL,
	amount      double precision NOT NULL,
	description varchar(1000) NOT NULL,
	due_date    date NOT NULL,
	status      text NOT NULL,
	created_at  timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS bills_member_id_idx ON bills (member_id);

CREATE TABLE IF NOT EXISTS supplements (
	id          uuid PRIMARY KEY,
	name        text NOT NULL,
	category    text NOT NULL DEFAULT '',
	description text NOT NULL DEFAULT '',
	price       double precision NOT NULL,
	stock       integer NOT NULL,
	created_at  timestamptz NOT NULL,
	updated_at  timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS diet_plans (
	id             uuid PRIMARY KEY,
	title          text NOT NULL,
	category       text NOT NULL DEFAULT '',
	description    varchar(2000) NOT NULL DEFAULT '',
	meal_plan      varchar(4000) NOT NULL DEFAULT '',
	calories       integer NOT NULL,
	duration_weeks integer NOT NULL,
	created_at     timestamptz NOT NULL,
	updated_at     timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	id              uuid PRIMARY KEY,
	title           text NOT NULL,
	message         text NOT NULL,
	type            text NOT NULL,
	target_audience text NOT NULL,
	read_flag       boolean NOT NULL DEFAULT false,
	created_at      timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS notifications_audience_idx ON notifications (target_audience, created_at DESC);
`

// Migrate applies the schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
