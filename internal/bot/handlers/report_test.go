package handlers

import (
	"strings"
	"testing"

	"github.com/nthenya/chamabot/internal/models"
)

func augustEntries() []models.PeriodEntry {
	return []models.PeriodEntry{
		{MemberName: "Agnes Mwende", Category: models.Parents, Amount: 0, Paid: false, Recorded: false},
		{MemberName: "Pauline Nthenya", Category: models.Parents, Amount: 500, Paid: true, Recorded: true},
		{MemberName: "Ian Kyalo", Category: models.GenMillennial, Amount: 250, Paid: true, Recorded: true},
		{MemberName: "Sharon Mwende", Category: models.GenMillennial, Amount: 300, Paid: true, Recorded: true},
		{MemberName: "Oscar Mandela", Category: models.GenAlpha, Amount: 50, Paid: false, Recorded: true},
	}
}

func TestBuildReport(t *testing.T) {
	want := "🎂💃🏽 SHOSHO'S BIRTHDAY CONTRIBUTION\n" +
		"\n" +
		"August Contributions:\n" +
		"\n" +
		"Parents\n" +
		"1. Agnes Mwende - 0/= ⏳\n" +
		"2. Pauline Nthenya - 500/= ✅\n" +
		"\n" +
		"GenMillennial\n" +
		"1. Ian Kyalo - 250/= ✅\n" +
		"2. Sharon Mwende - 300/= ✅\n" +
		"\n" +
		"GenAlpha\n" +
		"1. Oscar Mandela - 50/= ❌\n" +
		"\n" +
		"TOTAL: KES 1,050"

	got := BuildReport("August", augustEntries())
	if got != want {
		t.Fatalf("report mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildReportOmitsEmptyCategories(t *testing.T) {
	entries := []models.PeriodEntry{
		{MemberName: "Oscar Mandela", Category: models.GenAlpha, Amount: 50, Paid: true, Recorded: true},
	}
	got := BuildReport("July", entries)
	if strings.Contains(got, "Parents") || strings.Contains(got, "GenMillennial") {
		t.Fatalf("empty categories should be omitted:\n%s", got)
	}
	if !strings.Contains(got, "TOTAL: KES 50") {
		t.Fatalf("total missing:\n%s", got)
	}
}

func TestBuildReportTotalCountsOnlyPaid(t *testing.T) {
	got := BuildReport("August", augustEntries())
	// 500 + 250 + 300; Oscar's recorded-but-unpaid 50 stays out.
	if !strings.Contains(got, "TOTAL: KES 1,050") {
		t.Fatalf("unexpected total:\n%s", got)
	}
}

func TestBuildReportUnpaidGroupStillRenders(t *testing.T) {
	entries := []models.PeriodEntry{
		{MemberName: "Agnes Mwende", Category: models.Parents, Amount: 0, Recorded: false},
		{MemberName: "Pauline Nthenya", Category: models.Parents, Amount: 500, Recorded: true},
	}
	got := BuildReport("July", entries)
	if !strings.Contains(got, "1. Agnes Mwende - 0/= ⏳") {
		t.Fatalf("unrecorded member missing:\n%s", got)
	}
	if !strings.Contains(got, "2. Pauline Nthenya - 500/= ❌") {
		t.Fatalf("recorded unpaid member missing:\n%s", got)
	}
	if !strings.Contains(got, "TOTAL: KES 0") {
		t.Fatalf("total should be zero:\n%s", got)
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	a := BuildReport("August", augustEntries())
	b := BuildReport("August", augustEntries())
	if a != b {
		t.Fatal("same input must render byte-identical output")
	}
}

func TestBuildMemberList(t *testing.T) {
	members := []models.Member{
		{Name: "Oscar Mandela", Category: models.GenAlpha, DefaultAmount: 50},
		{Name: "Pauline Nthenya", Category: models.Parents, DefaultAmount: 500},
		{Name: "Sharon Mwende", Category: models.GenMillennial, DefaultAmount: 300},
	}
	want := "📋 ALL MEMBERS\n" +
		"\n" +
		"Parents\n" +
		"1. Pauline Nthenya - 500 KES\n" +
		"\n" +
		"GenMillennial\n" +
		"1. Sharon Mwende - 300 KES\n" +
		"\n" +
		"GenAlpha\n" +
		"1. Oscar Mandela - 50 KES"

	if got := BuildMemberList(members); got != want {
		t.Fatalf("member list mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildOutstanding(t *testing.T) {
	got := BuildOutstanding("August", augustEntries())
	if !strings.Contains(got, "Agnes Mwende") || !strings.Contains(got, "Oscar Mandela") {
		t.Fatalf("outstanding members missing:\n%s", got)
	}
	if strings.Contains(got, "Pauline Nthenya") {
		t.Fatalf("paid member should not be listed:\n%s", got)
	}
}

func TestBuildOutstandingAllPaid(t *testing.T) {
	entries := []models.PeriodEntry{
		{MemberName: "Pauline Nthenya", Category: models.Parents, Amount: 500, Paid: true, Recorded: true},
	}
	if got := BuildOutstanding("August", entries); got != "" {
		t.Fatalf("nothing outstanding should render empty, got %q", got)
	}
}
