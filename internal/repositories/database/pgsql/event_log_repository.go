package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/product_pricing_app/internal/models"
	"github.com/SscSPs/product_pricing_app/internal/utils/mapping"
	"github.com/SscSPs/product_pricing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// eventLogWithUser selects audit entries with their actor, if any.
const eventLogWithUser = `
	SELECT e.id, e.user_id, e.event_type, e.resource_type, e.resource_id, e.endpoint, e.method,
	       e.data, e.ip_address, e.user_agent, e.created_at, e.updated_at,
	       u.id, u.name, u.email
	FROM events_log e
	LEFT JOIN users u ON u.id = e.user_id`

var eventLogSortColumns = map[domain.EventLogSortField]string{
	domain.EventLogSortID:           "e.id",
	domain.EventLogSortCreatedAt:    "e.created_at",
	domain.EventLogSortEventType:    "e.event_type",
	domain.EventLogSortResourceType: "e.resource_type",
	domain.EventLogSortUserID:       "e.user_id",
}

type PgxEventLogRepository struct {
	BaseRepository
}

func newPgxEventLogRepository(pool *pgxpool.Pool) *PgxEventLogRepository {
	return &PgxEventLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventLogRepositoryFacade = (*PgxEventLogRepository)(nil)

func scanEventLogWithUser(row pgx.Row) (domain.EventLog, error) {
	var e models.EventLog
	var userID *int64
	var userName, userEmail *string
	err := row.Scan(
		&e.ID, &e.UserID, &e.EventType, &e.ResourceType, &e.ResourceID, &e.Endpoint, &e.Method,
		&e.Data, &e.IPAddress, &e.UserAgent, &e.CreatedAt, &e.UpdatedAt,
		&userID, &userName, &userEmail,
	)
	if err != nil {
		return domain.EventLog{}, err
	}

	var user *models.User
	if userID != nil {
		user = &models.User{ID: *userID}
		if userName != nil {
			user.Name = *userName
		}
		if userEmail != nil {
			user.Email = *userEmail
		}
	}
	return mapping.ToDomainEventLog(e, user), nil
}

// SaveEventLog appends an entry. Rows in events_log are never updated or deleted.
func (r *PgxEventLogRepository) SaveEventLog(ctx context.Context, entry *domain.EventLog) error {
	m := mapping.ToModelEventLog(*entry)
	if m.Data == nil {
		m.Data = map[string]any{}
	}
	query := `
		INSERT INTO events_log (user_id, event_type, resource_type, resource_id, endpoint, method, data, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at;
	`
	err := r.db(ctx).QueryRow(ctx, query,
		m.UserID, m.EventType, m.ResourceType, m.ResourceID, m.Endpoint, m.Method, m.Data, m.IPAddress, m.UserAgent,
	).Scan(&entry.EventLogID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event log: %w", err)
	}
	return nil
}

func (r *PgxEventLogRepository) FindEventLogByID(ctx context.Context, eventLogID int64) (*domain.EventLog, error) {
	entry, err := scanEventLogWithUser(r.db(ctx).QueryRow(ctx, eventLogWithUser+` WHERE e.id = $1;`, eventLogID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event log %d: %w", eventLogID, err)
	}
	return &entry, nil
}

func (r *PgxEventLogRepository) ListEventLogs(ctx context.Context, filter domain.EventLogFilter) (*domain.EventLogPage, error) {
	var conditions []string
	var args []any
	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if filter.EventType != "" {
		add("e.event_type = $%d", string(filter.EventType))
	}
	if filter.ResourceType != "" {
		add("e.resource_type = $%d", filter.ResourceType)
	}
	if filter.UserID != nil {
		add("e.user_id = $%d", *filter.UserID)
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM events_log e`+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count event logs: %w", err)
	}

	sortColumn, ok := eventLogSortColumns[filter.SortBy]
	if !ok {
		sortColumn = eventLogSortColumns[domain.EventLogSortCreatedAt]
	}
	direction := "DESC"
	if filter.SortOrder == domain.SortAsc {
		direction = "ASC"
	}

	args = append(args, filter.PerPage, pagination.Offset(filter.Page, filter.PerPage))
	query := fmt.Sprintf("%s%s ORDER BY %s %s, e.id %s LIMIT $%d OFFSET $%d;",
		eventLogWithUser, where, sortColumn, direction, direction, len(args)-1, len(args))

	entries, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &domain.EventLogPage{
		EventLogs: entries,
		Total:     total,
		Page:      filter.Page,
		PerPage:   filter.PerPage,
	}, nil
}

// ListEventLogsForExport bounds created_at by whole calendar days on both ends.
func (r *PgxEventLogRepository) ListEventLogsForExport(ctx context.Context, dateRange domain.DateRange) ([]domain.EventLog, error) {
	var conditions []string
	var args []any
	if dateRange.Start != nil {
		args = append(args, *dateRange.Start)
		conditions = append(conditions, fmt.Sprintf("e.created_at >= $%d", len(args)))
	}
	if dateRange.End != nil {
		args = append(args, dateRange.End.AddDate(0, 0, 1))
		conditions = append(conditions, fmt.Sprintf("e.created_at < $%d", len(args)))
	}
	query := eventLogWithUser
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.created_at DESC, e.id DESC;"

	return r.collect(ctx, query, args...)
}

func (r *PgxEventLogRepository) collect(ctx context.Context, query string, args ...any) ([]domain.EventLog, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event logs: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EventLog, error) {
		return scanEventLogWithUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan event logs: %w", err)
	}
	return entries, nil
}
