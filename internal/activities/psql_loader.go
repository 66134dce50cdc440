package activities

import (
	"context"
	"fmt"

	"github.com/2beens/fitcompanion/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// PsqlLoader reads the activity dataset from the activity_reference table.
type PsqlLoader struct {
	db *pgxpool.Pool
}

func NewPsqlLoader(db *pgxpool.Pool) *PsqlLoader {
	return &PsqlLoader{
		db: db,
	}
}

func (l *PsqlLoader) Load(ctx context.Context) (_ *Reference, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "activities.psqlLoader.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := l.db.Query(
		ctx,
		`SELECT activity_type, avg_cal_per_min FROM activity_reference ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query activity reference: %w", err)
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.Type, &a.AvgCalPerMin); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Printf("activity reference loaded from postgres: %d rows", len(activities))

	return NewReference(activities)
}
