package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/commerce-tools/marketlens/pkg/store/clickhouse"
)

// BigQueryConfig describes the BigQuery connection profile.
type BigQueryConfig struct {
	Project         string
	CredentialsFile string
}

// Registry reads engine connection profiles from an ini file with a
// section per engine:
//
//	[bigquery]
//	project = my-project
//	credentials_file = /path/to/sa.json
//
//	[clickhouse]
//	addr = localhost:9000
//	database = analytics
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	BigQuery(ctx context.Context) (*BigQueryConfig, error)
	ClickHouse(ctx context.Context) (*clickhouse.Config, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) BigQuery(_ context.Context) (*BigQueryConfig, error) {
	section := cr.cfg.Section("bigquery")
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("bigquery profile not found")
	}
	return &BigQueryConfig{
		Project:         section.Key("project").String(),
		CredentialsFile: section.Key("credentials_file").String(),
	}, nil
}

func (cr *cfgRegistry) ClickHouse(_ context.Context) (*clickhouse.Config, error) {
	section := cr.cfg.Section("clickhouse")
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("clickhouse profile not found")
	}
	return &clickhouse.Config{
		Addr:     section.Key("addr").String(),
		Database: section.Key("database").String(),
		Username: section.Key("username").String(),
		Password: section.Key("password").String(),
	}, nil
}
