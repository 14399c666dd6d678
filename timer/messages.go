package timer

import (
	"math/rand/v2"

	"github.com/personaplus/plus/internal/objective"
)

var completedMessages = []string{
	"Well done!",
	"That was fun, wasn't it?",
	"Another plus for you.",
	"Loved every second of it.",
	"You earned a plus, now earn a break.",
	"Great job, keep going!",
	"You're on a roll!",
	"One session at a time.",
	"Feeling stronger already?",
	"That was epic!",
	"What will you do next?",
	"There's still time for one more ;]",
}

var helpTexts = map[objective.Exercise]string{
	objective.PushUp: "Start in a plank with your hands a little wider than your shoulders. " +
		"Bend your elbows until your chest almost reaches the floor, then push back up. " +
		"Keep your core tight the whole way.\n\n" +
		"For a one handed push up, centre one hand under your shoulder and rest the other " +
		"behind your back. Go slowly and keep your balance.",
	objective.Lifting: "Split the weight evenly between both hands. If the objective is 6kg, " +
		"load 3kg on each side.\n\n" +
		"Hold your arm up and move it from a 90º elbow angle to 45º and back. " +
		"That is one lift. Keep going until every lift is done or the timer runs out.",
	objective.Running: "Wear comfortable shoes and warm up with a few minutes of brisk walking. " +
		"Run at a pace where your breathing stays steady and your posture stays relaxed. " +
		"Beginners can alternate running and walking. Walk and stretch at the end to cool down.",
	objective.Meditation: "Sit or lie down somewhere quiet. Close your eyes and take a few deep breaths. " +
		"Watch your thoughts come and go without judging them. " +
		"When your mind wanders, bring your attention back to your breath.",
	objective.Walking: "Wear comfortable shoes and walk at a natural pace, letting your arms swing. " +
		"Keep your back straight and your head up. " +
		"Add some brisk stretches of walking to raise your heart rate.",
}

const noHelpText = "There is no help available for this exercise."

// HelpText returns the instructions shown for an exercise.
func HelpText(e objective.Exercise) string {
	if text, ok := helpTexts[e]; ok {
		return text
	}

	return noHelpText
}

func completedMessage(r *rand.Rand) string {
	return completedMessages[r.IntN(len(completedMessages))]
}
