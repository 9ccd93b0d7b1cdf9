// Package recommend holds the static advisory text keyed by risk tier.
// This is a data table, not an algorithm: the same five categories are
// returned for every assessment sharing a tier, with no randomness and
// no external calls. Content is reviewed independently of code.
package recommend

import "asdscreen/internal/risk"

// Set groups the advisory text into the five report categories.
type Set struct {
	Medical    []string `json:"medical"`
	Therapy    []string `json:"therapy"`
	Relaxation []string `json:"relaxation"`
	Lifestyle  []string `json:"lifestyle"`
	Nutrition  []string `json:"nutrition"`
}

// ForLevel returns the advisory set for a risk tier. Unrecognized tiers
// fall back to the Low table so a partial record still renders.
func ForLevel(level risk.Level) Set {
	switch level {
	case risk.High:
		return highRisk
	case risk.Moderate:
		return moderateRisk
	default:
		return lowRisk
	}
}

var highRisk = Set{
	Medical: []string{
		"Consult with a developmental pediatrician or child psychiatrist for comprehensive evaluation",
		"Consider Applied Behavior Analysis (ABA) therapy - evidence-based intervention",
		"Discuss medication options with psychiatrist if co-occurring conditions exist (anxiety, ADHD, sleep issues)",
		"Medications may include: Risperidone or Aripiprazole for irritability (FDA approved for ASD)",
		"Melatonin supplements for sleep regulation (consult doctor for dosage)",
		"Regular monitoring and follow-ups every 3-6 months",
	},
	Therapy: []string{
		"Applied Behavior Analysis (ABA): 20-40 hours per week recommended",
		"Speech and Language Therapy: Focus on communication skills and social pragmatics",
		"Occupational Therapy: Address sensory processing and fine motor skills",
		"Social Skills Training: Group sessions for peer interaction",
		"Cognitive Behavioral Therapy (CBT): For managing anxiety and emotional regulation",
		"Parent training programs: PCIT (Parent-Child Interaction Therapy) or similar",
	},
	Relaxation: []string{
		"Child's Pose (Balasana): Calming effect, reduces anxiety - 2 minutes daily",
		"Tree Pose (Vrksasana): Improves balance and focus - 1 minute each leg",
		"Cat-Cow Stretch (Marjaryasana-Bitilasana): Body awareness and coordination - 5 repetitions",
		"Butterfly Pose (Baddha Konasana): Hip opening and calming - 2 minutes",
		"Deep Breathing (Pranayama): 5-10 minutes daily for emotional regulation",
		"Progressive Muscle Relaxation: Before bedtime for better sleep",
	},
	Lifestyle: []string{
		"Establish consistent daily routines with visual schedules",
		"Create a sensory-friendly environment at home (quiet spaces, soft lighting)",
		"Limit screen time to 1-2 hours daily with educational content",
		"Encourage physical activity: 60 minutes daily (swimming, cycling, dancing)",
		"Use social stories to prepare for new situations or transitions",
		"Implement positive reinforcement strategies consistently",
	},
	Nutrition: []string{
		"Gluten-free, casein-free diet (GFCF) - consult nutritionist before starting",
		"Omega-3 fatty acids: Fish oil supplements (500-1000mg daily)",
		"Probiotic-rich foods: Yogurt, kefir for gut health",
		"Avoid artificial colors, preservatives, and high-sugar foods",
		"Ensure adequate vitamin D (sunlight exposure or supplements)",
		"Zinc and magnesium supplements if deficient (blood test recommended)",
	},
}

var moderateRisk = Set{
	Medical: []string{
		"Schedule evaluation with developmental pediatrician within 3 months",
		"Consider Early Intervention Program (EIP) referral if under 3 years old",
		"Monitor developmental milestones closely",
		"Discuss preventive strategies with healthcare provider",
		"Annual comprehensive developmental screening recommended",
	},
	Therapy: []string{
		"Speech therapy if communication delays are present",
		"Occupational therapy for sensory sensitivities (2-3 sessions/week)",
		"Play-based therapy for social skill development",
		"Parent coaching sessions to learn supportive strategies",
		"Social skills groups (once weekly)",
	},
	Relaxation: []string{
		"Mountain Pose (Tadasana): Grounding and focus - 1 minute",
		"Warrior Pose (Virabhadrasana): Strength and confidence - 30 seconds each side",
		"Bridge Pose (Setu Bandhasana): Calming and energizing - 1 minute",
		"Seated Forward Bend (Paschimottanasana): Relaxation - 1-2 minutes",
		"Breathing exercises: 5 minutes daily",
	},
	Lifestyle: []string{
		"Maintain predictable routines with some flexibility",
		"Encourage social play dates in structured settings",
		"Practice turn-taking and sharing through games",
		"Limit sensory overload in busy environments",
		"Use visual supports for daily activities",
		"Promote physical activities: team sports or group classes",
	},
	Nutrition: []string{
		"Balanced diet with plenty of fruits and vegetables",
		"Omega-3 rich foods: Salmon, walnuts, flaxseeds",
		"Limit processed foods and added sugars",
		"Ensure adequate hydration throughout the day",
		"Consider multivitamin if dietary intake is limited",
	},
}

var lowRisk = Set{
	Medical: []string{
		"Continue regular pediatric check-ups",
		"Monitor developmental milestones per age guidelines",
		"Stay informed about developmental health",
		"Consult healthcare provider if new concerns arise",
	},
	Therapy: []string{
		"No specific interventions required currently",
		"Consider enrichment activities for overall development",
		"Encourage social interaction through playgroups or activities",
	},
	Relaxation: []string{
		"General yoga practice for wellness (10-15 minutes daily)",
		"Sun Salutation (Surya Namaskar): Morning routine",
		"Simple breathing exercises for stress management",
		"Mindfulness activities: 5 minutes daily",
	},
	Lifestyle: []string{
		"Maintain healthy sleep schedule (9-11 hours for children)",
		"Encourage diverse social interactions",
		"Promote physical activity and outdoor play",
		"Limit screen time according to age-appropriate guidelines",
		"Foster creative expression through arts and music",
	},
	Nutrition: []string{
		"Follow balanced, nutritious diet",
		"Encourage variety in food choices",
		"Limit junk food and sugary beverages",
		"Promote healthy eating habits and family meals",
	},
}
