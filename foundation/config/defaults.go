package config

// DefaultRules returns the compiled-in decision tables used when no
// rules config file is supplied.
func DefaultRules() Rules {
	return Rules{
		Indicators: Indicators{
			Angry: []string{
				"angry", "mad", "furious", "irritated", "annoyed", "frustrated",
				"outraged", "hate", "despise", "resent", "hostile", "rage",
			},
			Sad: []string{
				"sad", "unhappy", "miserable", "depressed", "down", "blue", "gloomy",
				"heartbroken", "disappointed", "upset", "hurt", "lonely", "grief",
			},
			Fearful: []string{
				"afraid", "scared", "frightened", "terrified", "anxious", "worried",
				"nervous", "panic", "terror", "horror", "dread", "concern",
			},
			Aggressive: []string{
				"hate", "kill", "destroy", "fight", "attack", "hurt", "violent",
				"threaten", "break", "smash", "hit", "punch", "yell", "scream",
			},
			Depressed: []string{
				"hopeless", "worthless", "empty", "numb", "tired", "exhausted",
				"alone", "suicide", "die", "end", "nothing", "pointless", "meaningless",
			},
		},

		Aliases: map[string]string{
			"fear":    "fearful",
			"disgust": "disgusted",
			"anxious": "fearful",
		},

		Medications: MedicationTable{
			"angry": {
				"low": {
					Medication: "Mild relaxant",
					Dosage:     "5mg",
					Advice:     "Take as needed for mild irritability. Practice deep breathing exercises.",
				},
				"medium": {
					Medication: "Lorazepam",
					Dosage:     "0.5mg",
					Advice:     "Take once when feeling moderately angry. Avoid alcohol.",
				},
				"high": {
					Medication: "Olanzapine",
					Dosage:     "5-10mg",
					Advice:     "Take once daily at night. Consult doctor if aggression increases.",
				},
			},
			"sad": {
				"low": {
					Medication: "St. John's Wort",
					Dosage:     "300mg",
					Advice:     "Take once daily. Consider light therapy and regular exercise.",
				},
				"medium": {
					Medication: "Sertraline",
					Dosage:     "25mg",
					Advice:     "Take once daily in the morning. May take 2-4 weeks for full effect.",
				},
				"high": {
					Medication: "Sertraline",
					Dosage:     "50-100mg",
					Advice:     "Take once daily in the morning. Schedule follow-up with doctor in 2 weeks.",
				},
			},
			"fearful": {
				"low": {
					Medication: "L-theanine",
					Dosage:     "200mg",
					Advice:     "Take as needed for mild anxiety. Practice mindfulness meditation.",
				},
				"medium": {
					Medication: "Buspirone",
					Dosage:     "5mg",
					Advice:     "Take twice daily. Avoid caffeine and alcohol.",
				},
				"high": {
					Medication: "Alprazolam",
					Dosage:     "0.25-0.5mg",
					Advice:     "Take as needed for acute anxiety. Do not drive after taking.",
				},
			},
			"depressed": {
				"low": {
					Medication: "Vitamin D",
					Dosage:     "2000 IU",
					Advice:     "Take daily with food. Increase outdoor activities.",
				},
				"medium": {
					Medication: "Escitalopram",
					Dosage:     "10mg",
					Advice:     "Take once daily. May cause initial increase in anxiety.",
				},
				"high": {
					Medication: "Venlafaxine",
					Dosage:     "75-150mg",
					Advice:     "Take once daily with food. Do not stop medication abruptly.",
				},
			},
			"aggressive": {
				"low": {
					Medication: "Propranolol",
					Dosage:     "10mg",
					Advice:     "Take as needed before stressful situations.",
				},
				"medium": {
					Medication: "Risperidone",
					Dosage:     "0.5mg",
					Advice:     "Take twice daily. Monitor for sedation.",
				},
				"high": {
					Medication: "Risperidone",
					Dosage:     "1-2mg",
					Advice:     "Take twice daily. Urgent psychiatric consultation recommended.",
				},
			},
		},
	}
}
