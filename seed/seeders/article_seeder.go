package seeders

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/services/repositories"
	"github.com/serenity-space/serenity_api/shared"
)

// ArticleSeeder writes the built-in wellness library.
type ArticleSeeder struct {
	repo     repositories.ArticleRepository
	articles []model.Article
}

func NewArticleSeeder(repo repositories.ArticleRepository) *ArticleSeeder {
	return &ArticleSeeder{repo: repo, articles: DefaultArticles()}
}

// SeedArticles upserts every built-in article by slug and returns how many
// were newly inserted. Running it again inserts nothing.
func (s *ArticleSeeder) SeedArticles(ctx context.Context) (int, error) {
	inserted := 0
	for _, article := range s.articles {
		if article.Author == "" {
			article.Author = shared.DefaultAuthor
		}
		created, err := s.repo.UpsertBySlug(ctx, &article)
		if err != nil {
			log.WithFields(log.Fields{"slug": article.Slug, "error": err.Error()}).Error("Error seeding article")
			return inserted, err
		}
		if created {
			inserted++
			log.WithField("slug", article.Slug).Debug("Created article")
		}
	}

	log.WithField("inserted", inserted).Info("Article seeding completed")
	return inserted, nil
}

// DefaultArticles returns a fresh copy of the built-in library.
func DefaultArticles() []model.Article {
	return []model.Article{
		{
			Slug:     "understanding-anxiety-a-gentle-guide",
			Title:    "Understanding Anxiety: A Gentle Guide",
			Content:  "Anxiety is a natural response to stress, but when it becomes overwhelming, it can impact our daily lives. Learning to recognize the signs and developing healthy coping strategies can make a significant difference. Remember, seeking help is a sign of strength, not weakness.",
			Category: "Mental Health",
			Author:   "Dr. Sarah Chen",
		},
		{
			Slug:     "the-power-of-mindful-breathing",
			Title:    "The Power of Mindful Breathing",
			Content:  "Breathing is something we do automatically, but when we bring conscious attention to our breath, it becomes a powerful tool for relaxation and stress relief. Try the 4-7-8 technique: inhale for 4 counts, hold for 7, exhale for 8. This simple practice can help calm your nervous system.",
			Category: "Mindfulness",
			Author:   "Marcus Thompson",
		},
		{
			Slug:     "building-emotional-resilience",
			Title:    "Building Emotional Resilience",
			Content:  "Emotional resilience is our ability to bounce back from difficult experiences. It's not about avoiding challenges, but developing the skills to navigate them with grace. Key practices include self-compassion, maintaining perspective, and building strong support networks.",
			Category: "Personal Growth",
			Author:   "Dr. Maya Patel",
		},
		{
			Slug:     "digital-detox-reclaiming-your-mental-space",
			Title:    "Digital Detox: Reclaiming Your Mental Space",
			Content:  "Our constant connection to digital devices can overwhelm our minds and increase stress levels. A digital detox involves intentionally reducing screen time and creating boundaries with technology. Start small: designate phone-free meals, create a charging station outside the bedroom, and practice the 20-20-20 rule - every 20 minutes, look at something 20 feet away for 20 seconds. Notice how reducing digital noise can improve your focus, sleep, and overall well-being.",
			Category: "Digital Wellbeing",
			Author:   "Dr. Alex Rivera",
		},
		{
			Slug:     "mindful-technology-use-finding-balance",
			Title:    "Mindful Technology Use: Finding Balance",
			Content:  "Technology isn't inherently bad - it's about how we use it. Mindful technology use means being intentional about when and why we engage with our devices. Set specific times for checking emails and social media, use app timers to track usage, and practice single-tasking instead of multitasking. Create tech-free zones in your home and establish a digital sunset routine 1 hour before bed. Remember: you control technology, not the other way around.",
			Category: "Digital Wellbeing",
			Author:   "Sarah Kim",
		},
		{
			Slug:     "social-media-and-mental-health-setting-boundaries",
			Title:    "Social Media and Mental Health: Setting Boundaries",
			Content:  "Social media can be a source of connection, but it can also trigger comparison, FOMO, and anxiety. Protect your mental health by curating your feeds - unfollow accounts that make you feel inadequate and follow those that inspire and educate. Use the 'mute' feature liberally, limit scrolling time, and remember that social media shows highlight reels, not reality. Consider a weekly social media sabbath to reconnect with yourself and your immediate surroundings.",
			Category: "Digital Wellbeing",
			Author:   "Dr. Michael Chen",
		},
		{
			Slug:     "screen-time-and-sleep-breaking-the-blue-light-cycle",
			Title:    "Screen Time and Sleep: Breaking the Blue Light Cycle",
			Content:  "Blue light from screens can disrupt our natural sleep-wake cycle by suppressing melatonin production. This leads to difficulty falling asleep and poor sleep quality. Combat this by using blue light filters on devices after sunset, keeping phones out of the bedroom, and establishing a wind-down routine that doesn't involve screens. Try reading a physical book, gentle stretching, or meditation instead. Your brain will thank you with better rest and improved mood.",
			Category: "Digital Wellbeing",
			Author:   "Dr. Emma Thompson",
		},
		{
			Slug:     "the-art-of-digital-minimalism",
			Title:    "The Art of Digital Minimalism",
			Content:  "Digital minimalism is about being more selective about the technologies we allow into our lives. It's not about rejecting all technology, but choosing tools that truly serve our values and goals. Regularly audit your apps - delete those you don't use, organize the rest thoughtfully, and resist the urge to download every new app. Focus on quality over quantity in your digital tools, just as you would with physical possessions. This intentional approach can reduce digital overwhelm and increase life satisfaction.",
			Category: "Digital Wellbeing",
			Author:   "Cal Newport",
		},
		{
			Slug:     "the-science-of-sleep-and-mental-health",
			Title:    "The Science of Sleep and Mental Health",
			Content:  "Quality sleep is fundamental to mental well-being. During sleep, our brains process emotions and consolidate memories. Creating a consistent sleep routine, limiting screen time before bed, and creating a calm environment can significantly improve both sleep quality and mental health.",
			Category: "Wellness",
			Author:   "Dr. James Wilson",
		},
		{
			Slug:     "cognitive-behavioral-techniques-for-daily-life",
			Title:    "Cognitive Behavioral Techniques for Daily Life",
			Content:  "CBT teaches us that our thoughts, feelings, and behaviors are interconnected. By identifying negative thought patterns and challenging them with evidence, we can change how we feel and respond to situations. This process takes practice but can lead to lasting positive changes.",
			Category: "Therapy",
			Author:   "Dr. Lisa Rodriguez",
		},
	}
}
