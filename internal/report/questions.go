package report

// Question pairs an AQ-10 item with its human-readable domain label.
type Question struct {
	Key   string
	Label string
}

// Questions lists the ten AQ-10 items in submission order. The report
// renders one row per entry, in this order.
var Questions = [10]Question{
	{"Q1", "Sensory Awareness"},
	{"Q2", "Attention to Detail"},
	{"Q3", "Social Attention"},
	{"Q4", "Attention Switching"},
	{"Q5", "Cognitive Flexibility"},
	{"Q6", "Communication"},
	{"Q7", "Social Awareness"},
	{"Q8", "Social Imagination"},
	{"Q9", "Pattern Interests"},
	{"Q10", "Social Intuition"},
}
