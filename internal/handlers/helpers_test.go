package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"oleum/internal/db/dbtest"
	"oleum/internal/db/mock"
)

func withTestSessionManager(t *testing.T) (*scs.SessionManager, func()) {
	t.Helper()
	original := sessionManager
	sm := scs.New()
	sessionManager = sm
	return sm, func() {
		sessionManager = original
	}
}

// withTestDatabase configures the handlers over an empty migrated database.
func withTestDatabase(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	originalDB, originalSM := database, sessionManager
	db := dbtest.Open(t)
	Configure(sessionManager, db)
	return db, func() {
		Configure(originalSM, originalDB)
	}
}

// withConfiguredCatalog configures the handlers over the seeded mock catalog.
func withConfiguredCatalog(t *testing.T) (*scs.SessionManager, *gorm.DB) {
	t.Helper()
	originalDB, originalSM := database, sessionManager
	db, err := mock.New(context.Background())
	if err != nil {
		t.Fatalf("failed to open mock database: %v", err)
	}
	sm := scs.New()
	Configure(sm, db)
	t.Cleanup(func() {
		Configure(originalSM, originalDB)
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return sm, db
}

func authenticateRequest(t *testing.T, sm *scs.SessionManager, req *http.Request, userID string) *http.Request {
	t.Helper()
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	req = req.WithContext(ctx)
	sm.Put(req.Context(), sessionUserIDKey, userID)
	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	return req
}
