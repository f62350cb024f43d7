package persistence

import (
	"context"
	"fmt"

	"postcomments/blog/domain"

	"github.com/google/uuid"
)

// demoAuthorID attributes the seeded records to a single well-known author.
var demoAuthorID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type demoPost struct {
	title    string
	text     string
	comments []string
}

var demoPosts = []demoPost{
	{
		title: "Fans Slam Criticism of the New Tomb Raider",
		text: "A YouTube personality suggested over the weekend that the new " +
			"Lara Croft will not be taken seriously because the casting does not " +
			"match the over-the-top cartoon version of the original video game " +
			"character. Backlash to the comment was instant.",
		comments: []string{
			"Expensive blockbuster movies are made for the broadest possible audience. It's all about the money.",
			"Depends on the movie, but roughly a third of all movie profits come from the US.",
			"Studios keep a far smaller share of the box office for foreign theaters than for domestic showings.",
			"Dialogue keeps getting worse because it's all going to be subtitled anyway.",
		},
	},
	{
		title: "Thinking of Switching Away From Your iPhone?",
		text: "Over the past weeks a few lifelong iPhone users have asked about " +
			"breaking their biannual upgrade cycle and moving to the Pixel " +
			"instead. Sometimes you just need a friend to convince you that " +
			"you're right.",
		comments: []string{
			"The most cross-shopped phone against an iPhone is another flagship, not the Pixel. Thinly veiled advertisement.",
			"How can I change when my digital life is surrounded by one ecosystem and I like it?",
			"The next Android release only lands on two phones at launch, which is another reason to buy them, right?",
			"Once all your devices share data seamlessly it is hard to consider anything outside that realm.",
		},
	},
	{
		title: "Want to Charge Your Phone in Seven Seconds? Look to Graphene",
		text: "Graphene is 200 times stronger than steel and lighter than paper, " +
			"and often referred to as a wonder material. Around 25 graphene-based " +
			"research projects, including robotics and wearables, were shown off " +
			"at last month's trade show.",
		comments: []string{
			"Whatever it is, it most certainly is not a 2D material. It still exists in three dimensions.",
			"Hope it goes consumer level soon. The energy applications are probably the most important.",
			"I doubt the seven-second recharge will ever come to fruition.",
			"Talk to me when I can hold it in my hand. Anyone remember gel batteries?",
		},
	},
}

// SeedDemoData loads fixed demonstration posts and comments into the given
// repositories. Intended for startup of the reference in-memory store only.
func SeedDemoData(ctx context.Context, posts domain.Repository[*domain.Post], comments domain.Repository[*domain.Comment]) error {
	for _, dp := range demoPosts {
		post, err := domain.NewPost(domain.NewTitle(dp.title), domain.NewContent(dp.text), demoAuthorID)
		if err != nil {
			return fmt.Errorf("failed to construct demo post: %w", err)
		}
		if err := posts.Add(ctx, post); err != nil {
			return fmt.Errorf("failed to seed demo post: %w", err)
		}

		for _, text := range dp.comments {
			comment, err := domain.NewComment(uuid.New(), post.ID, domain.NewContent(text))
			if err != nil {
				return fmt.Errorf("failed to construct demo comment: %w", err)
			}
			if err := comments.Add(ctx, comment); err != nil {
				return fmt.Errorf("failed to seed demo comment: %w", err)
			}
		}
	}

	return nil
}
