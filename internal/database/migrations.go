package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes creates the query and integrity indexes the auto-migration does
// not cover. All statements are idempotent so the pass can run on every boot.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		name    string
		table   string
		columns string
	}{
		{"idx_announcements_pinned_created_at", "announcements", "pinned DESC, created_at DESC"},
		{"idx_meetings_scheduled_at", "meetings", "scheduled_at"},
		{"idx_meetings_created_by_id", "meetings", "created_by_id"},
		{"idx_meeting_participants_meeting_id", "meeting_participants", "meeting_id"},
		{"idx_meeting_participants_user_id", "meeting_participants", "user_id"},
		{"idx_contact_requests_requester_id", "contact_requests", "requester_id"},
		{"idx_contact_requests_target_id", "contact_requests", "target_id"},
	}

	for _, idx := range indexes {
		sql := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	// Partial unique index: at most one PENDING request per ordered
	// (requester, target) pair, even under concurrent creation.
	pending := `CREATE UNIQUE INDEX IF NOT EXISTS ux_contact_requests_pending
		ON contact_requests (requester_id, target_id) WHERE status = 'PENDING'`
	if err := db.Exec(pending).Error; err != nil {
		return fmt.Errorf("failed to create index ux_contact_requests_pending: %w", err)
	}

	return nil
}
