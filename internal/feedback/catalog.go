package feedback

// Key names one learner-facing message.
type Key string

const (
	KeyStillReducible   Key = "still_reducible"
	KeyDivisorMissing   Key = "divisor_missing"
	KeyDivisorTooSmall  Key = "divisor_too_small"
	KeyResultIncomplete Key = "result_incomplete"
	KeyDivisorUneven    Key = "divisor_uneven"
	KeyResultWrong      Key = "result_wrong"
	KeyReduced          Key = "reduced"
	KeyExerciseComplete Key = "exercise_complete"
	KeySessionComplete  Key = "session_complete"
)

// Catalog maps keys to message templates. KeyDivisorUneven takes the
// divisor as its only argument.
type Catalog map[Key]string

// DefaultLanguage is used when no language or an unknown one is configured.
const DefaultLanguage = "en"

var catalogs = map[string]Catalog{
	"en": {
		KeyStillReducible:   "Not quite! This fraction can still be reduced. Look for a number that divides both the numerator and the denominator.",
		KeyDivisorMissing:   "Type a number, or press X if the fraction cannot be reduced.",
		KeyDivisorTooSmall:  "Enter a number greater than 1.",
		KeyResultIncomplete: "Fill in both numbers.",
		KeyDivisorUneven:    "Oops! %d does not divide both the numerator and the denominator evenly. Try a different number.",
		KeyResultWrong:      "Calculation error, try again.",
		KeyReduced:          "Great! The fraction is reduced. Can it be reduced again?",
		KeyExerciseComplete: "Excellent! You finished this exercise. On to the next one.",
		KeySessionComplete:  "Well done! You finished all the exercises!",
	},
	"he": {
		KeyStillReducible:   "טעות! אפשר לצמצם את השבר. נסי למצוא מספר שגם המונה וגם המכנה מתחלקים בו.",
		KeyDivisorMissing:   "יש להזין מספר או ללחוץ על ה-X",
		KeyDivisorTooSmall:  "יש להזין מספר גדול מ-1",
		KeyResultIncomplete: "נא למלא את שני המספרים",
		KeyDivisorUneven:    "אופס! %d לא מחלק את המונה והמכנה באופן שלם. נסי לבחור מספר אחר.",
		KeyResultWrong:      "טעות בחישוב, נסי שוב.",
		KeyReduced:          "מעולה! השבר צומצם. האם אפשר לצמצם שוב?",
		KeyExerciseComplete: "מצוין! סיימת את התרגיל הזה. בואי נעבור לתרגיל הבא.",
		KeySessionComplete:  "כל הכבוד! סיימת את כל התרגילים בהצלחה!",
	},
}

// Languages returns the supported language codes in stable order.
func Languages() []string {
	return []string{"en", "he"}
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}
