package lexical

// Static word and phrase tables backing the lexical analyzers. One table per
// analyzer so lists can be tuned or localized without touching control flow.

// spamTriggerPhrases are case-insensitive substrings that historically
// correlate with filter placement. Each hit adds 5 to the spam score.
var spamTriggerPhrases = []string{
	"100% free", "act now", "as seen on", "buy now", "buy direct",
	"cash bonus", "cheap", "click here", "click below", "congratulations",
	"credit card", "double your income", "earn extra cash", "earn money",
	"eliminate debt", "extra income", "fast cash", "free access",
	"free consultation", "free gift", "free money", "free offer",
	"free trial", "get paid", "guarantee", "guaranteed", "increase sales",
	"limited time", "lowest price", "make money", "million dollars",
	"miracle", "no catch", "no cost", "no credit check", "no obligation",
	"no risk", "once in a lifetime", "order now", "prize", "risk free",
	"satisfaction guaranteed", "save big", "special promotion", "urgent",
	"while supplies last", "win", "winner", "you have been selected",
	"100% satisfied", "additional income", "be your own boss",
	"call now", "cancel at any time", "dear friend", "don't delete",
	"exclusive deal", "get it now", "great offer", "instant",
	"lose weight", "lower interest rate", "offer expires",
	"pre-approved", "pure profit", "this isn't spam", "unsecured credit",
}

// unsubscribePhrases indicate CAN-SPAM opt-out language.
var unsubscribePhrases = []string{
	"unsubscribe", "opt out", "opt-out", "stop receiving",
	"remove me", "manage preferences", "email preferences",
	"update your preferences", "no longer wish to receive",
}

// positiveWords and negativeWords drive sentiment counting.
var positiveWords = []string{
	"great", "excellent", "good", "wonderful", "fantastic", "amazing",
	"happy", "excited", "love", "enjoy", "appreciate", "thank",
	"thanks", "grateful", "pleased", "delighted", "impressive", "helpful",
	"valuable", "success", "successful", "win", "achieve", "improve",
	"best", "better", "perfect", "awesome", "glad", "congrats",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "hate", "angry",
	"disappointed", "disappointing", "unfortunately", "problem", "issue",
	"concern", "worried", "fail", "failure", "wrong", "difficult",
	"frustrated", "annoyed", "upset", "sorry", "regret", "mistake",
	"worst", "poor", "broken", "complaint", "unhappy",
}

// casualWords and formalWords drive the formality signal.
var casualWords = []string{
	"hey", "hi", "yeah", "yep", "nope", "cool", "awesome", "stuff",
	"things", "gonna", "wanna", "gotta", "kinda", "btw", "fyi", "lol",
	"thanks a ton", "no worries", "super", "totally", "folks",
}

var formalWords = []string{
	"dear", "regards", "sincerely", "respectfully", "pursuant",
	"furthermore", "therefore", "however", "nevertheless", "accordingly",
	"herewith", "hereby", "kindly", "cordially", "esteemed",
	"per our", "as per", "attached please find", "i am writing to",
}

// urgencyWords drive the urgency signal.
var urgencyWords = []string{
	"urgent", "urgently", "asap", "immediately", "right away", "deadline",
	"today", "now", "quickly", "hurry", "expires", "expiring",
	"last chance", "final", "time-sensitive", "don't wait", "act fast",
	"running out", "before it's too late",
}

// professionalGreetings and casualGreetings classify the opening line.
var professionalGreetings = []string{
	"dear", "hello", "good morning", "good afternoon", "good evening",
	"greetings", "to whom it may concern",
}

var casualGreetings = []string{
	"hey", "hi", "hiya", "yo", "what's up", "howdy",
}

// closingPhrases detect a signature block in the last lines of a message.
var closingPhrases = []string{
	"best regards", "kind regards", "warm regards", "regards",
	"sincerely", "best", "thanks", "thank you", "cheers", "talk soon",
	"respectfully", "yours truly", "all the best", "many thanks",
	"looking forward", "warmly", "take care",
}

// CTA strength tiers. Strong phrases name a concrete, low-friction next step.
var weakCTAPhrases = []string{
	"let me know", "thoughts", "feel free", "if you're interested",
	"no pressure", "whenever you have time", "at your convenience",
	"hope to hear", "get back to me",
}

var moderateCTAPhrases = []string{
	"schedule", "book", "call", "meet", "chat", "connect", "discuss",
	"reply", "respond", "sign up", "register", "learn more", "check out",
	"take a look", "review",
}

var strongCTAPhrases = []string{
	"are you available", "does tuesday work", "15 minutes", "15-minute",
	"20 minutes", "30 minutes", "this week", "next week",
	"pick a time", "grab a slot", "here's my calendar", "book a time",
	"would wednesday", "how about", "can we schedule",
}

// shortenerDomains are URL shorteners treated as suspicious link hosts.
var shortenerDomains = []string{
	"bit.ly", "tinyurl.com", "goo.gl", "t.co", "ow.ly", "is.gd",
	"buff.ly", "rebrand.ly", "cutt.ly", "shorturl.at", "rb.gy", "tiny.cc",
}

// genericSalutations flag unmerged template greetings.
var genericSalutations = []string{
	"dear customer", "dear user", "dear member", "dear valued customer",
	"dear sir or madam", "to whom it may concern", "dear {first_name}",
	"hi first_name", "hello customer",
}

// intentPatterns maps each intent to its scoring keywords. Phrase hits score
// double weight relative to single words.
var intentPatterns = map[Intent][]intentPattern{
	IntentFollowUp: {
		{"following up", 20}, {"follow up", 20}, {"follow-up", 20},
		{"circling back", 18}, {"checking in", 15}, {"wanted to check", 12},
		{"any update", 12}, {"bumping this", 15}, {"per my last", 12},
	},
	IntentMeetingRequest: {
		{"schedule a meeting", 20}, {"schedule a call", 20}, {"book a time", 18},
		{"calendar", 10}, {"are you available", 15}, {"meet", 8},
		{"quick call", 15}, {"minutes of your time", 15}, {"demo", 10},
	},
	IntentWarmIntroduction: {
		{"was referred", 20}, {"referred me", 20}, {"introduced", 15},
		{"mutual", 12}, {"we met at", 15}, {"connected on", 10},
	},
	IntentReEngagement: {
		{"it's been a while", 20}, {"been a while", 18}, {"reconnect", 15},
		{"last spoke", 15}, {"few months ago", 12}, {"picking this back up", 15},
	},
	IntentBreakup: {
		{"last attempt", 20}, {"final email", 20}, {"closing the loop", 18},
		{"close your file", 18}, {"won't reach out again", 20},
		{"stop reaching out", 15},
	},
	IntentValueDelivery: {
		{"thought you might find", 15}, {"sharing this", 12}, {"resource", 10},
		{"guide", 8}, {"report", 8}, {"case study", 12}, {"no ask here", 15},
	},
	IntentReferralRequest: {
		{"right person", 20}, {"point me to", 15}, {"who handles", 18},
		{"best person to speak", 18}, {"refer me", 15},
	},
	IntentTestimonialAsk: {
		{"testimonial", 20}, {"review us", 15}, {"leave a review", 18},
		{"feedback on your experience", 15}, {"case study about", 12},
	},
	IntentThankYou: {
		{"thank you", 15}, {"thanks for", 15}, {"grateful", 12},
		{"appreciate your", 12}, {"meant a lot", 10},
	},
	IntentApology: {
		{"apologize", 20}, {"apologies", 20}, {"sorry for", 18},
		{"my mistake", 15}, {"we dropped the ball", 15},
	},
	IntentAnnouncement: {
		{"announcing", 18}, {"excited to share", 15}, {"we're launching", 18},
		{"new feature", 12}, {"now available", 12}, {"introducing", 15},
	},
	IntentSurveyRequest: {
		{"survey", 20}, {"questionnaire", 18}, {"2 minutes to answer", 15},
		{"your input", 10}, {"quick poll", 15},
	},
}

type intentPattern struct {
	phrase string
	weight int
}

// Stop-word lists for the five supported languages; frequency voting across
// these decides the dominant language before whatlanggo corroboration.
var languageStopWords = map[string][]string{
	"english":    {"the", "and", "you", "that", "for", "with", "this", "have", "are", "not", "your", "from", "was", "but"},
	"spanish":    {"que", "los", "las", "una", "por", "con", "para", "como", "más", "pero", "sus", "este", "esta", "usted"},
	"french":     {"les", "des", "est", "pour", "que", "dans", "une", "vous", "avec", "pas", "sur", "sont", "nous", "votre"},
	"german":     {"der", "die", "und", "das", "ist", "nicht", "sie", "mit", "für", "auf", "ein", "eine", "ich", "haben"},
	"portuguese": {"que", "não", "uma", "para", "com", "por", "mais", "dos", "como", "mas", "foi", "ele", "das", "seu"},
}
