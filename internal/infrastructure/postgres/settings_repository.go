package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
	"github.com/jhoicas/picking-scanner-api/pkg/config"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo parámetros del escáner en la tabla clave/valor config_parameters.
// Las claves sin fila toman el valor por defecto configurado.
type SettingsRepo struct {
	q        Querier
	defaults entity.ScannerSettings
}

// NewSettingsRepository construye el repositorio con los valores por defecto a aplicar.
func NewSettingsRepository(q Querier, defaults entity.ScannerSettings) *SettingsRepo {
	return &SettingsRepo{q: q, defaults: defaults}
}

// SettingsDefaults valores por defecto de los parámetros tomados de la configuración SCANNER_*.
func SettingsDefaults(cfg config.ScannerConfig) entity.ScannerSettings {
	return entity.ScannerSettings{
		AllowNewProducts: cfg.AllowNewProducts,
		AllowOverage:     cfg.AllowOverage,
		AutoValidate:     cfg.AutoValidate,
		RequireLocation:  cfg.RequireLocation,
		AutoIncrement:    cfg.AutoIncrement,
	}
}

type settingField struct {
	key string
	ptr func(s *entity.ScannerSettings) *bool
}

var settingFields = []settingField{
	{entity.ParamAllowNewProducts, func(s *entity.ScannerSettings) *bool { return &s.AllowNewProducts }},
	{entity.ParamAllowOverage, func(s *entity.ScannerSettings) *bool { return &s.AllowOverage }},
	{entity.ParamAutoValidate, func(s *entity.ScannerSettings) *bool { return &s.AutoValidate }},
	{entity.ParamRequireLocation, func(s *entity.ScannerSettings) *bool { return &s.RequireLocation }},
	{entity.ParamAutoIncrement, func(s *entity.ScannerSettings) *bool { return &s.AutoIncrement }},
}

// Get lee los cinco parámetros en una sola consulta.
func (r *SettingsRepo) Get(ctx context.Context) (entity.ScannerSettings, error) {
	keys := make([]string, 0, len(settingFields))
	for _, f := range settingFields {
		keys = append(keys, f.key)
	}
	query, args, err := psql.Select("key", "value").
		From("config_parameters").
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return entity.ScannerSettings{}, fmt.Errorf("build settings query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return entity.ScannerSettings{}, fmt.Errorf("get settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return entity.ScannerSettings{}, fmt.Errorf("scan setting: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return entity.ScannerSettings{}, fmt.Errorf("get settings: %w", err)
	}

	s := r.defaults
	for _, f := range settingFields {
		if raw, ok := values[f.key]; ok {
			if b, ok := parseParam(raw); ok {
				*f.ptr(&s) = b
			}
		}
	}
	return s, nil
}

// Save guarda los cinco parámetros (upsert por clave).
func (r *SettingsRepo) Save(ctx context.Context, s entity.ScannerSettings) error {
	b := psql.Insert("config_parameters").Columns("key", "value", "updated_at")
	for _, f := range settingFields {
		b = b.Values(f.key, formatParam(*f.ptr(&s)), sq.Expr("NOW()"))
	}
	query, args, err := b.
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings upsert: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// parseParam acepta "True"/"False" (formato histórico de la tabla) y cualquier booleano de strconv.
func parseParam(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}

func formatParam(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
