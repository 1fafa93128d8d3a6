package analyzer

// Static phrase tables for the domain analyzers. Kept as data so scoring
// heuristics can be tuned without touching control flow.

// genericOpeners are penalized first lines that read like every other cold
// email.
var genericOpeners = []string{
	"my name is", "i hope this email finds you well", "i hope you're doing well",
	"i wanted to reach out", "i am reaching out", "i'm reaching out",
	"allow me to introduce", "i work for", "we are a company",
	"hope you are well", "hope all is well", "to whom it may concern",
}

// patternInterruptOpeners are opening moves that earn a bonus: observations,
// questions and unexpected angles.
var patternInterruptOpeners = []string{
	"noticed", "saw your", "saw that", "congrats", "congratulations",
	"quick question", "odd question", "random question", "most emails",
	"i'll keep this short", "you probably get", "this isn't a sales pitch",
}

// researchMarkers signal the sender did homework on the recipient.
var researchMarkers = []string{
	"noticed", "saw", "congrats", "congratulations", "read your",
	"your recent", "your post", "your talk", "your podcast", "you mentioned",
	"your team", "your launch", "your funding",
}

// benefitVerbs mark concrete value language.
var benefitVerbs = []string{
	"save", "reduce", "increase", "grow", "cut", "boost", "improve",
	"eliminate", "accelerate", "double", "streamline", "automate",
}

// causalMarkers make benefits explicit ("which means", "so that").
var causalMarkers = []string{
	"which means", "so that", "so you can", "meaning you", "that way",
	"as a result",
}

// socialProofMarkers indicate metrics, named customers or testimonials.
var socialProofMarkers = []string{
	"customers", "clients", "companies like", "teams like", "case study",
	"helped", "worked with", "results", "% increase", "% reduction", "roi",
}

var testimonialMarkers = []string{
	"said", "told us", "according to", `"`, "in their words",
}

// Urgency bands for sales framing: natural deadlines are fine, manufactured
// ones get dinged, aggressive pressure is heavily penalized.
var naturalUrgencyPhrases = []string{
	"end of quarter", "end of the month", "before the holidays",
	"this week", "next week", "by friday", "planning season",
}

var artificialUrgencyPhrases = []string{
	"limited time", "act now", "don't miss out", "expires soon",
	"only a few spots", "while supplies last", "closing soon",
}

var aggressiveUrgencyPhrases = []string{
	"last chance", "final warning", "act immediately", "you must",
	"urgent response required", "asap!!!",
}

// timeBoxedAsks are the highest-scoring CTA form: a small, concrete request.
var timeBoxedAsks = []string{
	"15 minutes", "15-minute", "10 minutes", "20 minutes", "30 minutes",
	"quick call", "brief call", "short call",
}

// salesKeywordCategories classify "is this a sales email" with weights.
var salesKeywordCategories = []struct {
	words  []string
	weight int
}{
	{[]string{"pricing", "price", "demo", "trial", "discount", "quote"}, 15},
	{[]string{"product", "platform", "solution", "service", "tool", "offer"}, 10},
	{[]string{"roi", "save", "revenue", "growth", "increase sales", "cost"}, 10},
	{[]string{"customers", "clients", "case study", "testimonial"}, 8},
	{[]string{"schedule a call", "book a demo", "interested in", "buy"}, 12},
}

// Emotional-trigger word lists for subject scoring.
var emotionalTriggers = map[string][]string{
	"fear":       {"mistake", "missing", "warning", "risk", "avoid", "losing"},
	"excitement": {"amazing", "incredible", "breakthrough", "finally", "new"},
	"curiosity":  {"secret", "surprising", "unexpected", "what nobody", "behind"},
	"greed":      {"free", "save", "double", "bonus", "extra", "profit"},
	"pride":      {"exclusive", "invited", "selected", "vip", "top", "leader"},
}

// Subject spam-risk tiers.
var subjectSpamHighRisk = []string{
	"free", "winner", "cash", "$$$", "100%", "guarantee", "no obligation",
	"click here", "act now", "risk free",
}

var subjectSpamMediumRisk = []string{
	"offer", "deal", "discount", "sale", "limited", "urgent", "reminder",
	"don't miss", "last chance",
}

// curiosityWords feed the curiosity hook check.
var curiosityWords = []string{
	"secret", "surprising", "why", "how", "what", "mistake", "truth",
	"nobody", "hidden",
}

// transitionWords indicate narrative flow between paragraphs.
var transitionWords = []string{
	"because", "so", "that's why", "which is why", "for example",
	"in fact", "but", "however", "and yet", "here's", "the result",
}

// lowFrictionPhrases make a CTA easy to say yes to.
var lowFrictionPhrases = []string{
	"worth a chat", "open to", "would it make sense", "no pressure",
	"if not, no worries", "either way", "just reply", "one-word reply",
}

// specificTimeMarkers anchor a CTA to a concrete slot.
var specificTimeMarkers = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday",
	"tomorrow", "this week", "next week", "am", "pm", ":",
}

// signOffs close a message; presence feeds the closing score.
var signOffs = []string{
	"best", "best regards", "kind regards", "regards", "thanks",
	"thank you", "cheers", "sincerely", "talk soon", "warmly",
}

// firstPersonWords and secondPersonWords drive the you/I focus ratio.
var firstPersonWords = []string{"i", "we", "our", "us", "my", "me"}
var secondPersonWords = []string{"you", "your", "yours"}
