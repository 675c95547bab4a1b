package casebank

// seedCases defines the elevated mood case bank.
// 5 presentations, one per diagnosis option.
var seedCases = []Case{
	{
		Diagnosis:           BipolarManic,
		Age:                 28,
		Sex:                 "Male",
		PresentingComplaint: "Excessive happiness and increased energy",
		Duration:            "10 days",
		Associated:          "Decreased sleep, pressured speech, grandiosity, spending sprees",
		RiskFactors:         []string{"Past depressive episode"},
		MSE: "Elated mood, increased psychomotor activity, pressured speech, " +
			"flight of ideas, inflated self-esteem",
		Investigations: "Routine blood tests normal",
		SuicideRisk: SuicideRisk{
			Ideation:  "Absent",
			Plan:      "Absent",
			RiskLevel: "Low (but high risk of impulsive harm)",
		},
		Explanation: "Sustained elevated mood with increased energy, reduced need for sleep " +
			"and marked functional impairment consistent with mania.",
		Management: "• Hospitalize if severe or risky behavior\n" +
			"• Mood stabilizer (Lithium / Valproate)\n" +
			"• Antipsychotic for acute control\n" +
			"• Avoid antidepressants",
	},
	{
		Diagnosis:           BipolarHypomanic,
		Age:                 24,
		Sex:                 "Female",
		PresentingComplaint: "Feeling unusually happy and productive",
		Duration:            "5 days",
		Associated:          "Reduced sleep, talkativeness, increased goal-directed activity",
		RiskFactors:         []string{"Family history of bipolar disorder"},
		MSE:                 "Cheerful mood, increased speech, mildly distractible, no psychosis",
		Investigations:      "Normal",
		SuicideRisk: SuicideRisk{
			Ideation:  "Absent",
			Plan:      "Absent",
			RiskLevel: "Low",
		},
		Explanation: "Hypomania is a milder form of mania without marked social or occupational impairment.",
		Management: "• Mood stabilizer if recurrent\n" +
			"• Psychoeducation\n" +
			"• Monitor for progression to mania",
	},
	{
		Diagnosis:           StimulantInducedMood,
		Age:                 31,
		Sex:                 "Male",
		PresentingComplaint: "Extreme happiness and confidence after drug use",
		Duration:            "2 days",
		Associated:          "Insomnia, agitation, palpitations",
		RiskFactors:         []string{"Cocaine use"},
		MSE:                 "Euphoric mood, restlessness, pressured speech",
		Investigations:      "Urine toxicology positive for stimulants",
		SuicideRisk: SuicideRisk{
			Ideation:  "Absent",
			Plan:      "Absent",
			RiskLevel: "Low–Moderate (impulsivity)",
		},
		Explanation: "Mood elevation temporally related to substance use.",
		Management: "• Stop offending substance\n" +
			"• Supportive care\n" +
			"• Treat agitation if required",
	},
	{
		Diagnosis:           AntidepressantInducedMania,
		Age:                 35,
		Sex:                 "Female",
		PresentingComplaint: "Sudden excessive happiness after starting medication",
		Duration:            "1 week",
		Associated:          "Reduced sleep, increased confidence, overtalkative",
		RiskFactors:         []string{"Recent SSRI initiation"},
		MSE:                 "Elated mood, pressured speech, increased activity",
		Investigations:      "Normal",
		SuicideRisk: SuicideRisk{
			Ideation:  "Absent",
			Plan:      "Absent",
			RiskLevel: "Low",
		},
		Explanation: "Antidepressants can precipitate mania in vulnerable individuals.",
		Management: "• Stop antidepressant\n" +
			"• Start mood stabilizer\n" +
			"• Re-evaluate diagnosis (bipolarity)",
	},
	{
		Diagnosis:           SchizoaffectiveManic,
		Age:                 29,
		Sex:                 "Male",
		PresentingComplaint: "Excessive happiness with unusual beliefs",
		Duration:            "3 weeks",
		Associated:          "Decreased sleep, grandiose delusions",
		RiskFactors:         []string{"Past psychotic episodes"},
		MSE:                 "Elated mood, grandiosity, delusional ideas",
		Investigations:      "Normal",
		SuicideRisk: SuicideRisk{
			Ideation:  "Absent",
			Plan:      "Absent",
			RiskLevel: "Moderate (poor judgment)",
		},
		Explanation: "Concurrent mood symptoms and psychotic features independent of mood episodes.",
		Management: "• Antipsychotic\n" +
			"• Mood stabilizer\n" +
			"• Long-term psychiatric follow-up",
	},
}
