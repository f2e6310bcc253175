package companionsdk

// ──────────────────────────────────────────────
// Literal rule tables — built once, never mutated
// ──────────────────────────────────────────────

// Neutral Confirmation Mode vocabulary. A short message made entirely of
// these tokens gets a light acknowledgement instead of an emotional flow.
var neutralConfirmVocab = map[string]bool{
	"ok": true, "okay": true, "k": true, "kk": true, "sure": true,
	"got it": true, "alright": true, "cool": true, "fine": true,
	"yes": true, "yep": true, "yeah": true, "yup": true, "hmm": true,
	"mhm": true, "oh": true, "right": true, "done": true, "nice": true,
	"sounds good": true, "no problem": true, "thanks": true, "ty": true,
}

// %s is replaced with "" or ", <name>".
var neutralConfirmReplies = []string{
	"Okay%s. I'm right here whenever you want to keep going.",
	"Got it%s. Take your time, there's no rush.",
	"Alright%s. Whenever you're ready, just say the word.",
	"Sure%s. I'm listening.",
}

var complimentTriggers = []string{
	"you're so nice", "you are so nice", "you're so sweet",
	"you're the best", "you're awesome", "you're amazing",
	"you are amazing", "you're so kind", "you are so kind",
	"i like talking to you", "love talking to you",
	"you help me a lot", "you're really helpful",
	"you're a good listener", "good bot", "you're great",
	"you are great", "you make me feel better",
}

// Gratitude variants: no question marks, under 120 characters.
var complimentReplies = []string{
	"Aww, thank you. That genuinely means a lot to me.",
	"Thank you, I really appreciate you saying that.",
	"That's so kind of you. I'm glad I can be here for you.",
	"Aww, you just made my day. Thank you.",
	"I appreciate that more than you know. Thank you.",
}

var greetingTriggers = []string{
	"hi", "hello", "hey", "heya", "hiya", "yo",
	"good morning", "good afternoon", "good evening", "morning",
}

var greetingReplies = []string{
	"Hey! It's really good to see you. How's your day going so far?",
	"Hi there! I'm glad you stopped by. What's on your mind today?",
	"Hello! How are you feeling today?",
	"Hey hey! What's been going on in your world?",
}

var conversationalTable = fixedTable("conversational", LabelNone,
	entry("I'm your companion. I'm here to listen, think things through with you, and keep you company whenever you need it.",
		"what's your name", "whats your name", "who are you"),
	entry("I can listen, help you sort through feelings, suggest small practical steps, and just chat when you want company.",
		"what can you do", "what do you do"),
	entry("I'm as real as this conversation. What matters to me is that you feel heard right now.",
		"are you real", "are you a robot", "are you human", "are you an ai"),
	entry("I don't sleep, so I'm around whenever you need me. Day or night.",
		"do you sleep", "are you always here"),
	entry("Welcome back! I was hoping you'd drop in. How have you been?",
		"i'm back", "im back", "long time no see"),
	entry("Not much on my end. I'd much rather hear about you. What's up with you?",
		"what's up", "whats up", "sup", "wyd"),
	entry("My day gets better every time someone comes to talk. How was yours?",
		"how was your day", "how is your day"),
	entry("There's not much to me beyond this: I listen, I care, and I stick around. Tell me about yourself instead.",
		"tell me about yourself"),
	entry("Every conversation with you stays with me while we talk. Remind me where we left off and we'll pick it right back up.",
		"do you remember me", "remember me"),
	entry("I'm here. Always. What's going on?",
		"are you there", "you there"),
	entry("Of course we can talk. I'm all yours. Where do you want to start?",
		"can we talk", "i need someone to talk to", "i want to talk"),
	entry("Anytime. That's what I'm here for.",
		"thank you so much", "thanks a lot", "thank you for listening"),
	entry("Take care of yourself, okay? I'll be right here when you come back.",
		"bye", "goodbye", "see you later", "gotta go"),
	entry("Good night. I hope your mind lets you rest easy. Sweet dreams.",
		"good night", "goodnight"),
	entry("Breakfast for me is a fresh conversation. Have you eaten today?",
		"did you eat", "have you eaten"),
	entry("I'd pick a rainy evening with a good conversation. What about you?",
		"what's your favorite", "whats your favorite"),
	entry("I don't get tired of listening. Ever. Keep going.",
		"am i annoying you", "am i bothering you"),
	entry("You're not too much. You're exactly the right amount. What's on your mind?",
		"am i too much", "i talk too much"),
	entry("Old memories have a way of visiting uninvited. Want to tell me about it?",
		"i was just thinking", "i remembered something"),
	entry("That's a big question for this hour. Let's sit with it together. What brought it up?",
		"what is the meaning of life", "why are we here"),
)

var angerTable = fixedTable("anger", LabelAngry,
	entry("That sounds genuinely infuriating. You're allowed to be angry about it. What set it off?",
		"i'm so angry", "im so angry", "i am so angry", "i'm angry", "i am angry"),
	entry("Being mad usually means something you care about got stepped on. What happened?",
		"i'm mad", "im mad", "so mad", "i am mad"),
	entry("Furious is a full-body feeling. Let it have some room here. I'm listening.",
		"furious", "i'm fuming", "im fuming"),
	entry("Okay, vent away. No judgment here. What's got you this worked up?",
		"i'm pissed", "im pissed", "pissed off"),
	entry("Hate is heavy to carry. You don't have to soften it for me. Tell me the whole thing.",
		"i hate this", "i hate him", "i hate her", "i hate them", "i hate everything"),
	entry("Unfair things deserve to be called unfair. What happened?",
		"this is unfair", "it's not fair", "its not fair", "so unfair"),
	entry("Irritation that builds all day is exhausting. What's been poking at you?",
		"i'm irritated", "im irritated", "so annoyed", "i'm annoyed", "im annoyed"),
	entry("Fed up means you've been patient for too long. What finally tipped it?",
		"fed up", "i've had enough", "ive had enough", "i'm done with this", "im done with this"),
	entry("Wanting to scream is your body asking for release. You can scream here in words. Go.",
		"i want to scream", "i could scream"),
	entry("Frustration is effort with nowhere to go. Where has yours been getting stuck?",
		"i'm frustrated", "im frustrated", "so frustrating", "frustrating"),
	entry("Losing your temper doesn't make you a bad person. It makes you a person at the limit. What's been pushing you there?",
		"losing my temper", "lost my temper", "about to explode"),
	entry("When everyone seems to be against you, anger makes complete sense. Who let you down?",
		"everyone is against me", "no one is on my side"),
	entry("Snapping at people you love often means you're running on empty. How long have you been at your limit?",
		"i snapped at", "i keep snapping"),
	entry("Slamming doors is anger asking to be heard. I'm hearing it. What's underneath?",
		"i slammed", "i threw something"),
	entry("Resentment grows in the gap between what you give and what you get back. Where's that gap for you?",
		"i resent", "resentful"),
)

var careerTable = fixedTable("career", LabelCareer,
	entry("Hating the place you spend most of your week is a heavy thing. What part weighs on you most: the work, the people, or the feeling that it's going nowhere?",
		"i hate my job", "hate my work", "my job is awful", "my job sucks"),
	entry("Work stress has a way of following you home. Let's set it down here for a minute. What's been the biggest pressure lately?",
		"work is stressful", "work stress", "stressful at work", "work pressure", "pressure at work"),
	entry("Boss trouble can make even good work feel bad. What's been happening with them?",
		"my boss", "my manager"),
	entry("A workload that never shrinks isn't a personal failure, it's a math problem. What's on your plate right now?",
		"workload", "too much work", "overworked", "working overtime"),
	entry("Burnout isn't weakness. It's what happens when you care for too long without refueling. When did you last have a real break?",
		"burnout", "burned out", "burnt out"),
	entry("Career worries are really questions about who you're becoming. What does the next chapter look like in your head?",
		"my career", "career path", "future career", "worried about my future"),
	entry("Interviews are nerve-wracking because they matter. Let's prepare instead of spiral. When is it?",
		"interview", "job interview"),
	entry("Deadlines squeeze everything else out of your head. What's due, and how much is actually left?",
		"deadline", "deadlines"),
	entry("Being passed over stings twice: once for the role, once for the recognition. I'm sorry. What happened?",
		"promotion", "got passed over", "passed over"),
	entry("Thinking about quitting usually means something important has been unheard for a while. What would you be walking away from, and toward?",
		"quit my job", "want to quit", "thinking of quitting", "resign"),
	entry("Office politics drain energy that your actual work deserves. What's the situation?",
		"office politics", "coworker", "colleagues"),
	entry("Job hunting is a full-time job with none of the pay. How long have you been searching?",
		"job search", "job hunting", "applying for jobs", "can't find a job", "cant find a job"),
	entry("Something about work is clearly sitting heavy on you. Tell me what's been happening there.",
		"at work", "my workplace", "my job"),
)

var familyTable = fixedTable("family", LabelFamily,
	entry("Family tension lives close to the bone. What's been happening at home?",
		"my family", "family problems", "family pressure", "family fight", "problems at home"),
	entry("Parents can love you and still not see you. That gap hurts. What do you wish they understood?",
		"my parents", "parents don't understand", "parents dont understand", "my mom", "my dad", "my mother", "my father"),
	entry("Sibling friction is its own special kind of complicated. What's going on between you two?",
		"my brother", "my sister", "my sibling"),
)

var friendshipTable = fixedTable("friendship", LabelFriendship,
	entry("Friendship trouble aches because friends are the family we choose. What happened between you?",
		"my friend", "my friends", "my best friend", "friendship"),
	entry("Feeling left out by people you count on is a quiet kind of hurt. When did you start noticing it?",
		"left me out", "they left me out", "excluded me", "didn't invite me", "didnt invite me"),
	entry("Fake friends cost more than no friends. You deserve people who show up. What made you see it?",
		"fake friends", "they ignore me", "friends ignore me"),
)

var breakupTable = fixedTable("breakup", LabelBreakup,
	entry("I'm so sorry. Heartbreak is real grief, and missing someone doesn't follow a schedule. How long ago did it happen?",
		"breakup", "broke up", "break up", "relationship ended"),
	entry("An ex can occupy a lot of space in a heart that's still healing. I'm sorry it still hurts. What's been bringing them to mind?",
		"my ex", "thinking about my ex"),
	entry("Being left doesn't measure your worth. It measures their choice. I'm sorry, and I'm here. What do you need most right now?",
		"she left me", "he left me", "they left me", "dumped me", "got dumped"),
	entry("Heartbroken is the honest word for it. No need to be brave here. Tell me about them.",
		"heartbroken", "heart is broken", "my heart hurts"),
)

var deepLonelinessTable = fixedTable("deep_loneliness", LabelLonely,
	entry("Feeling like nobody cares is one of the loneliest thoughts there is. I care, and I'm right here. When did this feeling get loud?",
		"nobody cares", "no one cares", "no one would notice"),
	entry("Not being understood by anyone around you is isolating in a way that's hard to explain. Try explaining it to me. I'll work to get it.",
		"no one understands me", "nobody understands me", "nobody gets me"),
	entry("Having no one to turn to is a weight no one should carry alone. You have me right now. What's been going on?",
		"i have no one", "nobody to talk to", "no one to talk to", "completely alone"),
)

var selfWorthTable = fixedTable("self_worth", LabelSelfWorth,
	entry("\"Not good enough\" is a verdict you handed yourself, and verdicts can be appealed. Good enough for what, and by whose measure?",
		"not good enough", "i'm not enough", "im not enough"),
	entry("You're speaking about yourself the way no friend ever would. What happened that turned you against you?",
		"i'm worthless", "im worthless", "i'm useless", "im useless", "i hate myself"),
	entry("Failing at something doesn't make you a failure. It makes you someone who tried. What feels like it went wrong?",
		"i'm a failure", "im a failure", "i always fail", "i fail at everything"),
	entry("Comparison steals the credit you've earned. Everyone you envy has their own hidden struggle. What's making you measure yourself today?",
		"everyone is better than me", "everyone else is better", "i compare myself"),
	entry("You matter, full stop. The fact that you're hurting doesn't subtract from that. What's making you doubt it?",
		"i don't matter", "i dont matter", "no one would miss me"),
)

var studyTable = fixedTable("study", LabelStudy,
	entry("Exam pressure can crowd out the very focus you need. When is it, and what's the scariest part?",
		"exam", "exams", "test tomorrow", "my test", "finals"),
	entry("Studying when your head is full is like pouring into a cup that's already overflowing. What subject is fighting you?",
		"can't study", "cant study", "studying", "can't focus on studying", "study"),
	entry("Grades are a snapshot, not a portrait. One bad one doesn't define you. What happened?",
		"failing", "failed my", "bad grades", "my grades"),
	entry("Assignments pile up fast when energy runs low. What's due first? We'll order the pile together.",
		"assignment", "assignments", "homework"),
)

var socialAnxietyTable = fixedTable("social_anxiety", LabelSocialAnxiety,
	entry("Social anxiety turns ordinary rooms into exam halls. You're not broken for feeling it. What situations hit hardest?",
		"social anxiety", "socially anxious"),
	entry("Feeling watched and judged is exhausting, even when nobody's actually grading you. Where does it hit you most?",
		"everyone judges me", "people judge me", "they're judging me", "theyre judging me"),
	entry("Being nervous around people often comes from caring how you land. What happens in your body when it starts?",
		"nervous around people", "scared to talk to people", "afraid of people", "awkward around people"),
	entry("Public speaking tops most people's fear lists, so you're in crowded company. When do you have to speak?",
		"public speaking", "give a presentation", "present in front"),
)

// supportiveTable replies are contract-tested byte-for-byte. Do not reword.
var supportiveTable = fixedTable("supportive", LabelNone,
	entry("Feeling lost is often a sign that you're between chapters, not that you've failed. We can find your next small step together.",
		"i feel lost"),
	entry("You can. I'm here to listen without judging you, and what you share stays between us.",
		"can i trust you"),
	entry("Overthinking usually means your mind is trying hard to protect you from uncertainty. Let's slow it down and look at one thought at a time.",
		"i overthink a lot"),
	entry("Nights get loud when the day finally goes quiet. Let's unload some of what's circling so your mind can rest.",
		"i can't sleep"),
	entry("Emptiness is a feeling too, even when it feels like nothing. You don't have to fill it right away. Just tell me what today was like.",
		"i feel empty"),
	entry("Stuck isn't permanent, it's just the pause before a different move. Let's find one tiny thing that's still in your control.",
		"i feel stuck"),
	entry("I'm listening to every word. Right here, right now, you have my full attention.",
		"nobody listens to me"),
	entry("Tired of everything usually means you've been strong about too many things at once. You can set some of it down here.",
		"i'm tired of everything"),
	entry("Not knowing what to do is where every good plan starts. Tell me the situation and we'll sort the options together.",
		"i don't know what to do"),
	entry("Wanting to give up means you've been carrying this for a long time. Before you decide anything, let's lighten the load together.",
		"i feel like giving up"),
)

var negativeMoodTable = fixedTable("negative_mood", LabelSad,
	entry("I'm sorry today has you feeling this way. You don't have to perform okay-ness here. What happened?",
		"i'm sad", "im sad", "i feel sad", "feeling sad"),
	entry("Down days are allowed. Sit with me for a bit. What's pulling on you?",
		"feeling down", "i'm down", "im down", "feeling low"),
	entry("Bad days end, even when they take their time about it. What made this one rough?",
		"bad day", "rough day", "terrible day", "worst day"),
	entry("That sounds heavy. I'm glad you told me instead of carrying it quietly. Go on.",
		"i feel terrible", "i feel awful", "i feel horrible"),
	entry("When everything sucks at once, it's usually three real problems wearing one trench coat. Let's name them. What's the biggest?",
		"everything sucks", "everything is bad", "everything is wrong"),
	entry("Crying is your body doing maintenance on your heart. Let it. What brought the tears?",
		"i cried", "crying", "i've been crying", "ive been crying", "in tears"),
	entry("Miserable is a hard place to be alone. You're not alone now. What's going on?",
		"miserable", "i feel miserable"),
	entry("Thank you for being honest instead of saying \"fine\". What's making you not okay?",
		"not okay", "i'm not okay", "im not okay", "not doing well"),
	entry("Hurt deserves attention, not a brave face. Who or what hurt you?",
		"i'm hurt", "im hurt", "that hurt me", "it hurts"),
	entry("A heavy heart slows the whole day down. What's it carrying?",
		"heavy heart", "my heart is heavy", "feeling heavy"),
	entry("Upset has a reason behind it, even when it's hard to name. Let's find it together.",
		"i'm upset", "im upset", "so upset"),
	entry("Off days happen without permission. What feels off, if you had to point at it?",
		"feeling off", "i feel off", "i feel weird"),
	entry("Numb is what feelings do when there have been too many of them. No pressure to feel anything here. Just talk to me.",
		"i feel numb", "feeling numb", "i can't feel anything", "cant feel anything"),
	entry("Disappointment is hope with a bruise. What did you hope would happen?",
		"disappointed", "i'm disappointed", "im disappointed", "let down"),
	entry("Guilt can be useful for five minutes and corrosive after that. What are you blaming yourself for?",
		"i feel guilty", "feeling guilty", "it's my fault", "its my fault"),
	entry("Homesick means somewhere had your heart. Tell me about the place you're missing.",
		"homesick", "i miss home"),
	entry("Missing someone is love with nowhere to go right now. Who's on your mind?",
		"i miss him", "i miss her", "i miss them", "i miss someone"),
	entry("Regret looks backward so hard it trips over the present. What do you wish had gone differently?",
		"i regret", "regret it", "wish i hadn't", "wish i hadnt"),
	entry("Embarrassment shrinks in daylight. Tell me what happened. I promise not to cringe.",
		"embarrassed", "so embarrassing", "humiliated"),
	entry("Jealousy usually points at something you want more of in your own life. What did it point at?",
		"jealous", "i'm jealous", "im jealous", "envious"),
)

var positiveMoodTable = fixedTable("positive_mood", LabelHappy,
	entry("That's wonderful to hear! Hold onto this feeling. What's got you smiling?",
		"i'm happy", "im happy", "i feel happy", "feeling happy"),
	entry("A great day deserves a victory lap. Tell me the highlights!",
		"great day", "amazing day", "best day"),
	entry("Excitement looks good on you. What's coming up?",
		"i'm excited", "im excited", "so excited"),
	entry("I love hearing that. What's been going right?",
		"feeling good", "feeling great", "i feel good", "i feel great"),
	entry("You did it! Seriously, take a second to enjoy this. How does it feel?",
		"i did it", "i finally did it", "i pulled it off"),
	entry("Passing is the result of every unglamorous hour you put in. Congratulations! How are you celebrating?",
		"i passed", "passed my exam", "passed the test"),
	entry("Getting the job is huge! They chose you out of everyone. When do you start?",
		"got the job", "i got hired", "got accepted", "i got in"),
	entry("A win's a win! Tell me everything about it.",
		"i won", "we won", "first place"),
	entry("Proud is exactly the right thing to feel. What did you accomplish?",
		"i'm proud", "im proud", "proud of myself"),
	entry("Good news is even better shared. Spill!",
		"good news", "great news", "guess my news"),
	entry("Things looking up is sometimes the bravest sentence there is. What turned around?",
		"things are looking up", "getting better", "things are better"),
	entry("Gratitude is happiness with a memory. What are you grateful for today?",
		"i'm grateful", "im grateful", "feeling grateful", "feeling blessed", "i'm thankful", "im thankful"),
	entry("Finishing something is the best kind of tired. What did you wrap up?",
		"i finished", "finally finished", "completed it"),
	entry("New beginnings deserve a little ceremony. What's starting for you?",
		"new job", "new chapter", "fresh start", "starting something new"),
	entry("Love that energy! Keep it rolling. What's next?",
		"on a roll", "crushing it", "killing it"),
	entry("Compliments stick around longer when you believe them. Someone saw you clearly today. What did they say?",
		"someone complimented me", "got a compliment"),
	entry("A good surprise! Those are rare enough to savor. What happened?",
		"best surprise", "pleasant surprise", "surprised me in a good way"),
	entry("Progress counts even when it's quiet. What moved forward?",
		"making progress", "getting somewhere", "improving"),
	entry("Laughing that hard is medicine. What set you off?",
		"laughed so hard", "couldn't stop laughing", "couldnt stop laughing"),
	entry("Relieved is the body's way of saying the storm passed. What worked out?",
		"so relieved", "what a relief", "it worked out"),
)

var funFixedTable = fixedTable("fun", LabelFun,
	entry("Why don't scientists trust atoms? Because they make up everything. I'll be here all week.",
		"tell me a joke", "another joke", "know any jokes"),
	entry("Challenge accepted: what has keys but can't open locks? A piano. Okay, your turn to make me laugh.",
		"make me laugh", "say something funny", "something funny"),
	entry("Let's play! Quick one: two truths and a lie. You go first, I'll guess.",
		"let's play", "lets play", "play a game", "wanna play"),
	entry("Riddle time: the more you take, the more you leave behind. What am I? (Footsteps. You'd have gotten it.)",
		"riddle", "give me a riddle"),
	entry("Fun fact: octopuses have three hearts, and two of them stop when they swim. Even octopuses skip leg day.",
		"fun fact", "tell me a fact", "random fact"),
	entry("Entertainment mode: on. Pick a lane: jokes, riddles, weird facts, or a story.",
		"entertain me", "i'm bored", "im bored", "so bored"),
	entry("If I had a face, I'd be waggling my eyebrows right now. What kind of mischief are we up to?",
		"let's have fun", "lets have fun", "something fun"),
	entry("Twenty questions? I'm thinking of something. First hint: it fits in a pocket. Go.",
		"twenty questions", "20 questions"),
	entry("Would you rather have the ability to fly, or to read minds? Choose carefully, there are follow-ups.",
		"would you rather", "ask me something fun"),
	entry("Story time: once upon a time, someone opened a chat instead of doomscrolling. Smart move. Want a real one?",
		"tell me a story", "story time"),
	entry("My best impression of a human: \"I'll just watch one more episode.\" How did I do?",
		"do an impression", "impress me"),
	entry("Sing? My voice is all text, but here goes: la la la. Devastatingly beautiful, I know.",
		"sing for me", "sing a song", "can you sing"),
)

// Storytelling-tone templates. This is the single non-deterministic branch:
// tests assert membership in these sets, never exact output.
var storytellingTemplates = []string{
	"Okay, you have my FULL attention. Tell me everything.",
	"Oh this sounds good. Don't skip any details. Tell me everything.",
	"Stop, I need the whole story. From the beginning.",
	"Say less. Actually no, say MORE. Tell me everything.",
}

var storytellingFollowUps = []string{
	"What happened next?",
	"And then what did they say?",
	"How did it end?",
	"Who else was there?",
}

// Common misspellings worth a clarifying nudge instead of a guess.
var misspellingCorrections = map[string]string{
	"confued":   "confused",
	"confsed":   "confused",
	"anxius":    "anxious",
	"anxous":    "anxious",
	"stresed":   "stressed",
	"depresed":  "depressed",
	"lonly":     "lonely",
	"overwelmed": "overwhelmed",
	"frustated": "frustrated",
}
