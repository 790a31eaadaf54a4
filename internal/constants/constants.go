package constants

// ViewSection identifies a tracker section (habits, sleep, mood)
type ViewSection string

// ViewPeriod identifies a calendar bucketing period
type ViewPeriod string

const (
	AppName            = "habits"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habits/habits.db"
	DefaultOwner       = "default"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the wall-clock label format for night-window blocks (HH:MM)
	TimeFormat = "15:04"

	// Night window: a night anchored at calendar date D spans NightStartHour
	// on D to NightStartHour on D+1. The forward 18:00 convention attributes
	// an interval crossing midnight to a single night regardless of whether
	// it began before or after midnight.
	NightStartHour = 18
	NightHours     = 24

	// NoSleepLabel is the duration string shown when a night has no data
	NoSleepLabel = "–"

	// Mood scale bounds (inclusive)
	MoodMin = 0
	MoodMax = 10

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habits-"
	BackupFileSuffix = ".db"

	// View sections
	SectionHabits ViewSection = "habits"
	SectionSleep  ViewSection = "sleep"
	SectionMood   ViewSection = "mood"

	// View periods
	PeriodDay   ViewPeriod = "day"
	PeriodWeek  ViewPeriod = "week"
	PeriodMonth ViewPeriod = "month"
)
