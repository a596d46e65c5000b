package services

import (
	"fmt"
	"strings"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type questionRule struct {
	name     string
	keywords []string
	build    func(thought string) []dto.Question
}

func textQuestion(id int, question string) dto.Question {
	return dto.Question{ID: id, Question: question, Type: shared.QuestionTypeText}
}

func choiceQuestion(id int, question string, options ...string) dto.Question {
	return dto.Question{ID: id, Question: question, Type: shared.QuestionTypeChoice, Options: options}
}

func numberQuestion(id int, question string, lo, hi int) dto.Question {
	return dto.Question{ID: id, Question: question, Type: shared.QuestionTypeNumber, Min: &lo, Max: &hi}
}

// questionRules is checked in order; the first rule with a matching keyword wins.
// The last rule has no keywords and always matches.
var questionRules = []questionRule{
	{
		name:     "failure",
		keywords: []string{"fail", "failure"},
		build: func(thought string) []dto.Question {
			return []dto.Question{
				textQuestion(1, "Think of your biggest 'failure' that later led to something good. What did that teach you about the word 'failure'?"),
				textQuestion(2, "If you knew that failing at this would lead to your greatest breakthrough in 5 years, how would you approach it differently?"),
				textQuestion(3, "What would you attempt if you knew that 'failure' was just data collection for your next success?"),
				choiceQuestion(4, "Which feels more true right now?",
					"I'm protecting myself from pain", "I'm limiting my potential", "I'm being realistic", "I'm scared but that's okay"),
				textQuestion(5, "If failure was impossible, what would you do with your life?"),
				textQuestion(6, fmt.Sprintf("What if '%s' is your mind trying to keep you safe from something that might actually be worth the risk?", thought)),
			}
		},
	},
	{
		name:     "absolutes",
		keywords: []string{"never", "always"},
		build: func(thought string) []dto.Question {
			return []dto.Question{
				textQuestion(1, "Your brain is using absolute words like 'always' or 'never' - what is it trying to protect you from feeling?"),
				textQuestion(2, fmt.Sprintf("If you replaced 'always/never' with 'sometimes' or 'often', how does '%s' feel different?", thought)),
				textQuestion(3, "What would it mean about you as a person if this pattern could actually change?"),
				choiceQuestion(4, "When you think in absolutes, what are you avoiding?",
					"Hope (because it might hurt)", "Responsibility for change", "The complexity of reality", "Uncertainty about the future"),
				textQuestion(5, "What's one tiny exception to this 'always/never' rule that you've been ignoring?"),
				textQuestion(6, fmt.Sprintf("What would become possible in your life if '%s' was only true 70%% of the time instead of 100%%?", thought)),
			}
		},
	},
	{
		name:     "self_criticism",
		keywords: []string{"stupid", "dumb", "idiot"},
		build: func(string) []dto.Question {
			return []dto.Question{
				textQuestion(1, "Who first taught you that making mistakes meant you were stupid? What did that person gain by making you believe this?"),
				textQuestion(2, "If intelligence was measured by kindness, curiosity, and growth instead of perfection, how would you rate yourself?"),
				textQuestion(3, "What would you accomplish if you knew that every 'mistake' was actually your brain learning and rewiring itself?"),
				choiceQuestion(4, "What's the real fear behind calling yourself stupid?",
					"People will reject me", "I'll never improve", "I don't deserve good things", "I'm not worthy of love"),
				textQuestion(5, "Think of someone you admire - what 'stupid' mistakes did they make on their way to success?"),
				textQuestion(6, "What if your inner critic calling you stupid is actually terrified that you're about to outgrow the small story it's been telling about you?"),
			}
		},
	},
	{
		name:     "self_hatred",
		keywords: []string{"hate", "terrible", "awful"},
		build: func(thought string) []dto.Question {
			return []dto.Question{
				textQuestion(1, "This intense self-hatred - what is it trying to protect you from? What would happen if you stopped hating yourself?"),
				textQuestion(2, "If you met a child who felt about themselves the way you feel right now, what would your heart want to tell them?"),
				textQuestion(3, "What would you have to believe about yourself to feel worthy of love and belonging?"),
				choiceQuestion(4, "What's underneath this hatred?",
					"Deep sadness and grief", "Fear of being abandoned", "Shame about who I am", "Exhaustion from trying so hard"),
				textQuestion(5, "If self-hatred was a person, what would they be most afraid of you discovering about yourself?"),
				textQuestion(6, fmt.Sprintf("What if the part of you that thinks '%s' is actually the part that cares most deeply about your wellbeing, but doesn't know how to help?", thought)),
			}
		},
	},
	{
		name:     "worth",
		keywords: []string{"worthless", "useless", "waste"},
		build: func(thought string) []dto.Question {
			return []dto.Question{
				textQuestion(1, "If your worth was determined by your impact on just one person's life, whose life have you touched in a way that mattered?"),
				textQuestion(2, "What would you need to accomplish to finally feel 'worthy'? And then what? What happens after that goal?"),
				textQuestion(3, "If a newborn baby is born worthy of love, at what exact moment did you lose that worthiness?"),
				choiceQuestion(4, "What's the difference between your worth and your productivity?",
					"They're the same thing", "Worth is deeper than what I do", "I've never thought about this", "I don't know how to separate them"),
				textQuestion(5, "What would you do with your life if your worth was already guaranteed and couldn't be taken away?"),
				textQuestion(6, fmt.Sprintf("What if '%s' is the voice of a system that profits from your self-doubt, not the voice of truth?", thought)),
			}
		},
	},
	{
		name:     "helplessness",
		keywords: []string{"can't", "impossible", "too hard"},
		build: func(thought string) []dto.Question {
			return []dto.Question{
				textQuestion(1, "What would you attempt if you knew that 'I can't' was just your current skill level, not your permanent identity?"),
				textQuestion(2, "Who benefits from you believing that this is impossible for you?"),
				textQuestion(3, "What's the smallest possible step you could take toward this 'impossible' thing?"),
				choiceQuestion(4, "What are you really saying when you say 'I can't'?",
					"I don't know how yet", "I'm scared of failing", "I don't deserve success", "It's safer to not try"),
				textQuestion(5, "If someone offered you $1 million to figure out how to do this 'impossible' thing, what would your first step be?"),
				textQuestion(6, fmt.Sprintf("What if '%s' is your mind's way of avoiding the discomfort of growth?", thought)),
			}
		},
	},
	{
		name:     "loneliness",
		keywords: []string{"alone", "nobody", "no one"},
		build: func(thought string) []dto.Question {
			return []dto.Question{
				textQuestion(1, "When you feel most alone, what are you really longing for - connection, understanding, or acceptance?"),
				textQuestion(2, "If you could send a message to everyone who has ever felt alone, what would you want them to know?"),
				textQuestion(3, "What would it feel like to be truly seen and accepted for exactly who you are right now?"),
				choiceQuestion(4, "What keeps you from reaching out when you feel alone?",
					"Fear of being a burden", "Shame about my struggles", "Belief that no one would understand", "Past experiences of rejection"),
				textQuestion(5, "Think of a time when you helped someone feel less alone - what did that teach you about human connection?"),
				textQuestion(6, fmt.Sprintf("What if '%s' is actually your heart's way of calling you toward deeper, more authentic connections?", thought)),
			}
		},
	},
	{
		name: "default",
		build: func(thought string) []dto.Question {
			return []dto.Question{
				textQuestion(1, "If this thought was a person sitting across from you, what would you want to ask them about their intentions?"),
				textQuestion(2, fmt.Sprintf("What would become possible in your life if '%s' was just one perspective, not the ultimate truth?", thought)),
				textQuestion(3, "What is this thought trying to protect you from experiencing?"),
				choiceQuestion(4, "If you had to choose, which feels more true?",
					"This thought defines me", "This thought visits me", "This thought is trying to help", "This thought is outdated programming"),
				textQuestion(5, "What would you do today if you knew this thought was just mental weather that will pass?"),
				textQuestion(6, fmt.Sprintf("What if the part of you that believes '%s' is actually your wisest self in disguise, trying to get your attention about something important?", thought)),
			}
		},
	},
}

func matchQuestionRule(thought string) questionRule {
	lowered := strings.ToLower(thought)
	for _, rule := range questionRules {
		if len(rule.keywords) == 0 {
			return rule
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule
			}
		}
	}
	return questionRules[len(questionRules)-1]
}

// QuestionService serves the CBT prompt catalog. It holds no state.
type QuestionService struct{}

func NewQuestionService() *QuestionService {
	return &QuestionService{}
}

// StaticQuestions is the generic reframing set.
func (svc *QuestionService) StaticQuestions() *dto.QuestionSetResponse {
	return &dto.QuestionSetResponse{
		Questions: []dto.Question{
			choiceQuestion(1, "Is this thought based on facts or feelings?", "Facts", "Feelings", "Both", "Not sure"),
			textQuestion(2, "What evidence do I have that supports this thought?"),
			textQuestion(3, "What evidence do I have against this thought?"),
			textQuestion(4, "What would I tell a friend who had this thought?"),
			numberQuestion(5, "How likely is it that this worst-case scenario will actually happen? (0-100%)", 0, 100),
			textQuestion(6, "What's a more balanced way to think about this situation?"),
		},
	}
}

// GenerateQuestions picks the question set for the thought. The thought is
// matched case-insensitively and interpolated exactly as submitted.
func (svc *QuestionService) GenerateQuestions(req dto.DynamicQuestionRequest) *dto.QuestionSetResponse {
	return &dto.QuestionSetResponse{
		Questions: matchQuestionRule(req.GetNegativeThought()).build(req.GetNegativeThought()),
	}
}
