package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"harmonylink_backend/internal/app"
	"harmonylink_backend/internal/config"
	"harmonylink_backend/internal/service"
	"harmonylink_backend/pkg/logger"

	"github.com/fatih/color"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只建表并播种参考数据，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()
	defer logger.Log.Sync()

	if cfg.MigrateOnly {
		ok, err := application.Seeded()
		if err != nil {
			log.Fatalf("Failed to verify seed data: %v", err)
		}
		if !ok {
			log.Fatal("Breathing level catalog is incomplete after initialization")
		}
		log.Println("数据库初始化完成，退出程序")
		return
	}

	snapshot, err := application.RunDemo()
	if err != nil {
		log.Fatalf("Demo sequence failed: %v", err)
	}

	printSnapshot(os.Stdout, snapshot)
}

var header = color.New(color.FgCyan, color.Bold)

func printSnapshot(w io.Writer, snap *service.Snapshot) {
	header.Fprintln(w, "\n===== USERS =====")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCREATED")
	for _, u := range snap.Users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	tw.Flush()

	header.Fprintln(w, "\n===== MOOD SESSIONS =====")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tSTRESS\tQ1\tQ2\tQ3\tPOINTS")
	for _, m := range snap.MoodSessions {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t%d\n",
			m.ID, m.UserID, m.StressLevel, strOrDash(m.Q1Answer), strOrDash(m.Q2Answer), strOrDash(m.Q3Answer), m.PointsEarned)
	}
	tw.Flush()

	header.Fprintln(w, "\n===== BREATHING LEVELS =====")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDURATION\tBASE POINTS")
	for _, l := range snap.BreathingLevels {
		fmt.Fprintf(tw, "%d\t%s\t%ds\t%d\n", l.ID, l.Title, l.DurationSeconds, l.BasePoints)
	}
	tw.Flush()

	header.Fprintln(w, "\n===== BREATHING SESSIONS =====")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tLEVEL\tMOOD SESSION\tCOMPLETED\tPOINTS")
	for _, b := range snap.BreathingSessions {
		moodRef := "-"
		if b.MoodSessionID != nil {
			moodRef = fmt.Sprintf("%d", *b.MoodSessionID)
		}
		completed := "-"
		if b.CompletedAt != nil {
			completed = b.CompletedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%d\n", b.ID, b.UserID, b.LevelID, moodRef, completed, b.PointsEarned)
	}
	tw.Flush()

	header.Fprintln(w, "\n===== USER STATS =====")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USER\tTOTAL POINTS\tSTREAK DAYS\tLAST ACTIVITY")
	for _, s := range snap.Stats {
		lastActivity := "-"
		if s.LastActivityDate != nil {
			lastActivity = s.LastActivityDate.String()
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", s.UserID, s.TotalPoints, s.CurrentStreakDays, lastActivity)
	}
	tw.Flush()
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
