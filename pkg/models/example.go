package models

// ExampleOrder returns a filled-in squad attack order for demonstration.
func ExampleOrder() Order {
	return Order{
		Orientation: Orientation{
			PresentLocation:   "18TVM8534",
			DirectionAzimuth:  "045",
			DirectionDistance: "800",
			ObjectiveLocation: "18TVM8642",
			Kocoa: Kocoa{
				KeyTerrain:  "Hill 142 to the northeast provides overwatch of the objective. The treeline at grid 8538 offers covered approach.",
				Observation: "Open fields to the east provide good fields of fire. Limited visibility in the woodline to the west.",
				Cover:       "Stone walls along the road provide cover. Woodline offers concealment for approach.",
				Obstacles:   "Wire obstacle at the objective perimeter. Creek crossing at grid 8540 - fordable.",
				Avenues:     "Primary: Along treeline from southwest. Alternate: Road approach from south (more exposed).",
			},
			Weather: "Clear skies, temp 45F, winds NW 5-10 knots. First light 0615, BMNT 0545. Good visibility.",
		},
		Situation: Situation{
			Salute: Salute{
				Size:      "Squad-sized element, 8-10 personnel",
				Activity:  "Defending fortified position, conducting local security patrols",
				Location:  "Building complex at grid 18TVM8642",
				Unit:      "Unknown militia, woodland camouflage uniforms",
				Time:      "0430 local (this morning)",
				Equipment: "Small arms (AK-pattern rifles), 1x PKM machine gun, no observed armor or vehicles",
			},
			Drawd: Drawd{
				Defend:    "Likely to defend in place. Prepared positions with overhead cover observed.",
				Reinforce: "Possible reinforcement from village 2km north within 30 minutes of contact.",
				Attack:    "Limited offensive capability. May conduct spoiling attack if our approach detected.",
				Withdraw:  "Likely withdrawal route to the north along MSR.",
				Delay:     "May delay with PKM covering withdrawal if overwhelmed.",
			},
			Emlcoa: "Enemy defends in place, engaging our assault element with PKM while riflemen provide supporting fire from prepared positions.",
			Emdcoa: "Enemy detects our approach, reinforces position, and establishes ambush along our primary avenue of approach.",
			Friendly: Friendly{
				HigherMission:   "2nd Platoon attacks to clear enemy positions in zone NLT 0700 to enable company advance.",
				HigherIntent:    "Purpose: Eliminate enemy presence blocking MSR. Method: Deliberate clearance with supporting fires. End State: Enemy destroyed or displaced, MSR open for traffic.",
				AdjacentNorth:   "2nd Squad establishes support-by-fire position at grid 8644",
				AdjacentSouth:   "3rd Squad in reserve at ORP, prepared to exploit success",
				AdjacentEast:    "None",
				AdjacentWest:    "None",
				SupportingUnits: "60mm mortars on call, 2 rounds HE per tube. Platoon MG section attached to 2nd Squad.",
			},
			Attachments: "1x Combat Engineer attached for obstacle breach. 1x Corpsman.",
		},
		Mission: Mission{
			Who:   "1st Squad",
			What:  "attacks to seize",
			Where: "Building 1 at grid 18TVM8642",
			When:  "NLT 0630",
			Why:   "destroy enemy forces and establish foothold for platoon assault on the objective complex",
		},
		Execution: Execution{
			Intent: Intent{
				Purpose:          "Eliminate enemy defensive position blocking our advance along MSR.",
				Method:           "Rapid assault following suppression, close with and destroy enemy in building.",
				EndstateFriendly: "1st Squad consolidated on objective, prepared to support follow-on assault.",
				EndstateEnemy:    "Enemy in Building 1 destroyed or captured.",
				EndstateTerrain:  "Building 1 cleared and secured, enabling platoon maneuver.",
			},
			Concept: Concept{
				SchemeManeuver: "From ORP, squad moves in wedge formation along covered route through treeline. At LD, shift to traveling overwatch. At PLD, 2nd FT establishes SBF while 1st and 3rd FT assault. Assault element breaches entry point, clears building room by room.",
				FireSupport:    "60mm mortars fire smoke screen on signal to obscure enemy observation. 2nd Squad MGs suppress enemy positions on order. Lift/shift fires on green star cluster.",
			},
			Tasks: Tasks{
				Team1:       "1st Fire Team leads assault element. Breaches point of entry on the southeast corner. Clears rooms 1-3. Be prepared to assume SBF if 2nd FT becomes combat ineffective.",
				Team2:       "2nd Fire Team establishes support-by-fire position at grid 8640. Suppresses enemy in objective on order. Shifts fire on green star cluster. Joins assault on red star cluster.",
				Team3:       "3rd Fire Team follows 1st FT in assault. Clears rooms 4-6. Secures EPWs. Establishes security on north side of building post-assault.",
				Attachments: "Combat Engineer attached to 1st FT for breach. Corpsman with assault element.",
			},
			Coordinating: Coordinating{
				Timeline:      "SP from ORP: 0545. Cross LD: 0600. PLD: 0615. H-Hour (assault): 0625.",
				PriorityFires: "2nd Fire Team, then 1st Fire Team, then 3rd Fire Team.",
				ROE:           "Hostile act/hostile intent. PID required. Minimize collateral damage.",
				MOPP:          "MOPP 0",
				Contact:       "Break contact, move to rally point, report. If within 100m of objective, assault through.",
				Objective:     "Clear building systematically. Mark cleared rooms. Consolidate on north side.",
				Consolidation: "ACE report within 5 minutes. Establish 360 security. Prepare for counterattack.",
				Formation:     "Wedge to PLD, then assault column",
				Technique:     "Traveling Overwatch",
				Departure:     "Passage point at grid 8534. Challenge: Thunder. Password: Lightning. Report departure and return.",
			},
		},
		Admin: Admin{
			Administration: Administration{
				EPW:      "Search, silence, segregate, speed to collection point. 3rd FT responsible for EPW handling.",
				Captured: "Mark in place, do not touch. Report to squad leader for exploitation.",
			},
			Logistics: Logistics{
				Ammo:      "210 rounds 5.56 per rifleman. 600 rounds per SAW. 2x grenades per Marine. Resupply at ORP after consolidation.",
				Rations:   "1x MRE. Consume prior to SP.",
				Water:     "2 quarts per Marine. Resupply at ORP.",
				Equipment: "Breaching kit with 1st FT. Flex cuffs with 3rd FT. IR chemlights for marking.",
				Resupply:  "18TVM8534 (ORP)",
			},
			Casevac: Casevac{
				Collection: "18TVM8538",
				Route:      "South along treeline to collection point. Mark with VS-17 panel.",
				Medical:    "Corpsman with assault element. CCP at grid 8538. Medevac on standby at FOB.",
			},
		},
		Command: Command{
			Command: CommandPost{
				Location:   "With 1st Fire Team during assault",
				Succession: "1. Squad Leader, 2. 1st Fire Team Leader, 3. 2nd Fire Team Leader, 4. 3rd Fire Team Leader",
				CP:         "18TVM8534",
			},
			Frequencies: Frequencies{
				Primary:     "Squad: 42.50",
				Alternate:   "Platoon: 43.75",
				Contingency: "Company: 38.25",
				Emergency:   "Battalion TAC: 51.00",
			},
			Callsigns: Callsigns{
				Higher:       "Warrior 6 (Platoon Commander)",
				ThisUnit:     "Warrior 1",
				Subordinates: "1st FT: Warrior 1-1, 2nd FT: Warrior 1-2, 3rd FT: Warrior 1-3",
			},
			Signals: Signals{
				ShiftFire: "Green star cluster",
				CeaseFire: "Cease fire, cease fire, cease fire (verbal)",
				Assault:   "Red star cluster",
				Rally:     "ORP at grid 8534",
			},
			Pyrotechnics:      "Green star cluster: Shift/lift fire. Red star cluster: Assault/commit reserve. Red smoke: Casualty, mark CCP.",
			ChallengePassword: "Thunder / Lightning",
			RunningPassword:   "Oorah",
			NumberCombo:       "Any two numbers equaling 7",
			TimeHack:          "0530",
		},
	}
}
