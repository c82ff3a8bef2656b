//go:build testutil
// +build testutil

package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nthenya/chamabot/internal/app"
	"github.com/nthenya/chamabot/internal/config"
	"github.com/nthenya/chamabot/internal/db"
	"github.com/nthenya/chamabot/internal/testutil/testdb"
)

const (
	adminPhone  = "254700000000"
	strangerTel = "254799999999"
)

func flowConfig() *config.Config {
	return &config.Config{
		AdminPhones: map[string]struct{}{adminPhone: {}},
		Location:    time.UTC,
	}
}

func TestCommandFlow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	d := app.New(h.DB, flowConfig(), zap.NewNop().Sugar())

	// A month can exist before any member does. Twilio's sender format
	// ("whatsapp:+<number>") must match the bare allow-list entry.
	if got := d.HandleText(ctx, "whatsapp:+"+adminPhone, "AddMonth August"); !strings.Contains(got, "✅ Month added!") {
		t.Fatalf("AddMonth: %q", got)
	}
	if got := d.HandleText(ctx, adminPhone, "AddMonth August"); !strings.Contains(got, "already exists") {
		t.Fatalf("duplicate AddMonth: %q", got)
	}

	// Unseeded member: MarkPaid must refuse, not invent a row.
	if got := d.HandleText(ctx, adminPhone, "MarkPaid Pauline August 500"); !strings.Contains(got, "not found") {
		t.Fatalf("MarkPaid before InitDB: %q", got)
	}

	if got := d.HandleText(ctx, adminPhone, "InitDB"); !strings.Contains(got, "✅ Database initialized!") {
		t.Fatalf("InitDB: %q", got)
	}

	// Same command now resolves "Pauline" to the seeded Pauline Nthenya.
	got := d.HandleText(ctx, adminPhone, "MarkPaid Pauline August 500")
	if !strings.Contains(got, "✅ Payment recorded!") || !strings.Contains(got, "Pauline Nthenya") {
		t.Fatalf("MarkPaid after InitDB: %q", got)
	}

	// Default amount for a GenAlpha member.
	got = d.HandleText(ctx, adminPhone, "MarkPaid Oscar August")
	if !strings.Contains(got, "Amount: 50 KES") {
		t.Fatalf("MarkPaid default amount: %q", got)
	}

	// Override on re-mark updates the same row.
	got = d.HandleText(ctx, adminPhone, "MarkPaid Oscar August 75")
	if !strings.Contains(got, "Amount: 75 KES") || !strings.Contains(got, "updated existing record") {
		t.Fatalf("MarkPaid re-mark: %q", got)
	}

	report := d.HandleText(ctx, adminPhone, "Report August")
	if !strings.Contains(report, "Pauline Nthenya - 500/= ✅") {
		t.Fatalf("report missing Pauline:\n%s", report)
	}
	if !strings.Contains(report, "Oscar Mandela - 75/= ✅") {
		t.Fatalf("report missing Oscar:\n%s", report)
	}
	if !strings.Contains(report, "TOTAL: KES 575") {
		t.Fatalf("report total:\n%s", report)
	}

	if got := d.HandleText(ctx, adminPhone, "Report Nevuary"); !strings.Contains(got, "not found") {
		t.Fatalf("Report for missing month: %q", got)
	}
}

func TestUnauthorizedLeavesStoreUntouched(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	d := app.New(h.DB, flowConfig(), zap.NewNop().Sugar())

	if got := d.HandleText(ctx, strangerTel, "AddMember Eve Parents"); !strings.Contains(got, "not authorized") {
		t.Fatalf("stranger AddMember: %q", got)
	}
	if got := d.HandleText(ctx, strangerTel, "InitDB"); !strings.Contains(got, "not authorized") {
		t.Fatalf("stranger InitDB: %q", got)
	}

	members, err := db.ListMembers(ctx, h.DB)
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 0 {
		t.Fatalf("store changed by unauthorized commands: %+v", members)
	}

	// Read-only commands stay open.
	if got := d.HandleText(ctx, strangerTel, "ListMembers"); got != "No members found in the database." {
		t.Fatalf("stranger ListMembers: %q", got)
	}
}

func TestAddMemberPolicies(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	d := app.New(h.DB, flowConfig(), zap.NewNop().Sugar())

	got := d.HandleText(ctx, adminPhone, "AddMember Grace Mueni Parents")
	if !strings.Contains(got, "Default Amount: 500 KES") {
		t.Fatalf("AddMember default: %q", got)
	}
	// Same name again: rejected, not updated.
	if got := d.HandleText(ctx, adminPhone, "AddMember Grace Mueni Parents 900"); !strings.Contains(got, "already exists") {
		t.Fatalf("duplicate AddMember: %q", got)
	}
	member, err := db.GetMemberByName(ctx, h.DB, "Grace Mueni")
	if err != nil {
		t.Fatal(err)
	}
	if member.DefaultAmount != 500 {
		t.Fatalf("duplicate AddMember must not mutate, amount = %d", member.DefaultAmount)
	}

	if got := d.HandleText(ctx, adminPhone, "AddMember Brian GenZ"); !strings.Contains(got, "Default Amount: 300 KES") {
		t.Fatalf("GenZ alias: %q", got)
	}
	if got := d.HandleText(ctx, adminPhone, "AddMember Kim Elders"); !strings.Contains(got, "Invalid category") {
		t.Fatalf("bad category: %q", got)
	}
}
