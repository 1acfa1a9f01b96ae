package corpus

import (
	"time"

	"github.com/prepdeck/prepdeck/guide"
)

// hrGuide returns the behavioral and HR round question bank.
// No code snippets here; the answers are frameworks for building your own
// stories, not scripts to recite.
func hrGuide() *guide.Guide {
	return &guide.Guide{
		Slug:        "hr-interview-questions",
		Title:       "HR Interview Questions",
		Kind:        guide.KindQuestionBank,
		Description: "The behavioral round. Every answer below is a framework, not a script: prepare your own stories against it and rehearse them out loud.",
		UpdatedAt:   time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC),
		Sections: []guide.Section{
			{
				Heading: "About You",
				Questions: []guide.Question{
					{
						ID:         "hr-001",
						Topic:      "behavioral",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "Tell me about yourself.",
						Answer: []string{
							"A ninety-second arc, present-past-future: what you do now and are good at, the one or two past moves that explain how you got here, and why this role is the logical next step. End on the role, not on your hobbies.",
							"This answer sets the interview's agenda - whatever you emphasize is what they will dig into, so emphasize the things you want to be asked about.",
						},
					},
					{
						ID:         "hr-002",
						Topic:      "strengths-weaknesses",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "What is your biggest weakness?",
						Answer: []string{
							"Name a real, non-disqualifying weakness plus the running mitigation: 'I over-scope first versions, so I now write a cut-list before starting and review it with my lead.' The mitigation is the actual answer; the weakness is just its setup.",
							"Avoid the disguised brag ('I work too hard') - interviewers hear it daily and score it as an evasion.",
						},
					},
					{
						ID:         "hr-003",
						Topic:      "career-goals",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Where do you see yourself in five years?",
						Answer: []string{
							"They are checking whether your direction and the role's trajectory point the same way. Give a direction (depth in a domain, growth toward leading projects) rather than a title, and connect it to what this team does. 'I don't know yet' is acceptable only if followed by what you are doing to find out.",
						},
					},
					{
						ID:         "hr-004",
						Topic:      "career-goals",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "Why do you want to work here?",
						Answer: []string{
							"Specifics or nothing: a product decision you admired, a post from their engineering blog, the problem space itself. One genuine, researched reason beats three generic ones. The inverse question is implicit - why should they want you - so close the loop by tying the reason to what you bring.",
						},
					},
				},
			},
			{
				Heading: "Working With Others",
				Questions: []guide.Question{
					{
						ID:         "hr-005",
						Topic:      "conflict",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Describe a disagreement with a colleague and how it was resolved.",
						Answer: []string{
							"STAR structure, with the weight on how you understood their position before pushing yours. Strong stories end in one of two ways: you were persuaded and say so plainly, or you disagreed-and-committed and the outcome taught something. Stories where you simply won convince nobody.",
							"Never cast the other person as incompetent; the interviewer models how you will talk about them someday.",
						},
					},
					{
						ID:         "hr-006",
						Topic:      "teamwork",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Tell me about a time you received hard feedback.",
						Answer: []string{
							"Pick feedback that was true. The story's spine: what was said, the honest first reaction, what you changed, and the evidence the change stuck. The last part is what separates a real answer from a performed one - 'my next three design docs shipped without that problem' lands; 'I took it on board' does not.",
						},
					},
					{
						ID:         "hr-007",
						Topic:      "conflict",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "Your manager asks you to ship something you believe is not ready. What do you do?",
						Answer: []string{
							"Disagree with data, then commit. Lay out the specific risk, its likelihood, and a mitigation (feature flag, staged rollout, explicit follow-up). If the call still goes against you, execute it well and make sure the risk is documented rather than relitigated in the postmortem.",
							"The trap in this question is claiming you would escalate everything or refuse; both read as unworkable.",
						},
					},
					{
						ID:         "hr-008",
						Topic:      "teamwork",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Tell me about a time a project failed. What was your part in it?",
						Answer: []string{
							"Own a real contribution to the failure - a wrong estimate, a review you rushed, a risk you saw and did not raise. Then show the systemic lesson, not just personal resolve: what process or habit changed so the same failure is now harder to repeat.",
							"Interviewers ask this to find out whether you locate causes in yourself or only in circumstances; answer accordingly.",
						},
					},
				},
			},
		},
	}
}
