package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Cyrus-spc-tech/Pal-Ai/models"
	"github.com/Cyrus-spc-tech/Pal-Ai/services"
	"github.com/Cyrus-spc-tech/Pal-Ai/store"
)

// App is the interactive menu. It owns no state beyond the wired services
// and the current terminal streams.
type App struct {
	profiles   *services.ProfileService
	activities *services.ActivityService
	nutrition  *services.NutritionService
	log        *logrus.Logger
	in         *bufio.Reader
	out        io.Writer
}

func New(profiles *services.ProfileService, activities *services.ActivityService,
	nutrition *services.NutritionService, log *logrus.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		profiles:   profiles,
		activities: activities,
		nutrition:  nutrition,
		log:        log,
		in:         bufio.NewReader(in),
		out:        out,
	}
}

// Run shows the banner, onboards the user and loops over the menu until
// Exit is chosen or input runs out.
func (a *App) Run() error {
	a.banner()

	user, err := a.onboard()
	if err != nil {
		return err
	}

	for {
		a.menu()
		choice, err := a.prompt("\nChoose an option (1-7): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			a.logFood(user.ID)
		case "2":
			a.logWorkout(user.ID)
		case "3":
			a.logMood(user.ID)
		case "4":
			a.viewToday(user.ID)
		case "5":
			a.analyzeNutrition(user)
		case "6":
			a.updateGoals(user.ID)
		case "7":
			fmt.Fprintln(a.out, "\nSee you later! Keep crushing those goals!")
			return nil
		default:
			fmt.Fprintln(a.out, "\nInvalid choice. Please pick 1-7.")
		}
	}
}

func (a *App) banner() {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(a.out, "\n"+line)
	fmt.Fprintln(a.out, "PAL-AI - Your Personal Assistant")
	fmt.Fprintln(a.out, line)
	fmt.Fprintln(a.out, "Your friendly pal for tracking activities, nutrition, and more!")
	fmt.Fprintln(a.out, line)
}

func (a *App) menu() {
	line := strings.Repeat("-", 60)
	fmt.Fprintln(a.out, "\n"+line)
	fmt.Fprintln(a.out, "MAIN MENU")
	fmt.Fprintln(a.out, line)
	fmt.Fprintln(a.out, "  1. Log Food")
	fmt.Fprintln(a.out, "  2. Log Workout")
	fmt.Fprintln(a.out, "  3. Log Mood")
	fmt.Fprintln(a.out, "  4. View Today's Activities")
	fmt.Fprintln(a.out, "  5. Analyze Today's Nutrition")
	fmt.Fprintln(a.out, "  6. Update Goals")
	fmt.Fprintln(a.out, "  7. Exit")
	fmt.Fprintln(a.out, line)
}

func (a *App) onboard() (*models.User, error) {
	fmt.Fprintln(a.out, "\nHey there! Let's get you set up.")

	name, err := a.prompt("\nWhat's your name? ")
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(a.out, "\nAre you a:")
	fmt.Fprintln(a.out, "  1. Student")
	fmt.Fprintln(a.out, "  2. Working professional")
	fmt.Fprintln(a.out, "  3. Other")
	roleChoice, err := a.prompt("Pick one (1-3): ")
	if err != nil {
		return nil, err
	}
	role := "other"
	switch roleChoice {
	case "1":
		role = "student"
	case "2":
		role = "working"
	}

	goals, err := a.prompt("\nWhat are your main goals? (e.g., 'Stay healthy and ace exams'): ")
	if err != nil {
		return nil, err
	}

	calInput, err := a.prompt("\nDaily calorie goal? (press Enter for default): ")
	if err != nil {
		return nil, err
	}
	dailyCal := 0.0
	if calInput != "" {
		if v, perr := strconv.ParseFloat(calInput, 64); perr == nil {
			dailyCal = v
		}
	}

	user, err := a.profiles.CreateOrGetUser(name, role, goals, dailyCal)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "\nWelcome back, %s! Let's make today count.\n", user.Name)
	return user, nil
}

func (a *App) logFood(userID uint) {
	fmt.Fprintln(a.out, "\nFOOD LOGGING")
	desc, err := a.prompt("What did you eat? (e.g., 'chicken breast and rice'): ")
	if err != nil || desc == "" {
		fmt.Fprintln(a.out, "No food entered.")
		return
	}

	fmt.Fprintln(a.out, "\nLooking up nutrition data...")
	items, err := a.nutrition.Lookup(desc)
	if err != nil || len(items) == 0 {
		if err != nil {
			a.log.WithError(err).Warn("nutrition lookup failed")
		}
		fmt.Fprintln(a.out, "Couldn't fetch nutrition data. Logging without it.")
		if _, err := a.activities.LogActivity(userID, models.ActivityFood, desc, nil); err != nil {
			fmt.Fprintf(a.out, "Failed to log food: %v\n", err)
		}
		return
	}

	summary := services.SummarizeItems(items)
	fmt.Fprintln(a.out, "\nNutrition Info:")
	fmt.Fprintf(a.out, "   Calories: %.1f kcal\n", summary.Calories)
	fmt.Fprintf(a.out, "   Protein: %.1fg\n", summary.ProteinG)
	fmt.Fprintf(a.out, "   Carbs: %.1fg\n", summary.CarbsG)
	fmt.Fprintf(a.out, "   Fat: %.1fg\n", summary.FatG)

	if _, err := a.activities.LogActivity(userID, models.ActivityFood, desc, &summary); err != nil {
		fmt.Fprintf(a.out, "Failed to log food: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "\nLogged food: %s\n", desc)
}

func (a *App) logWorkout(userID uint) {
	fmt.Fprintln(a.out, "\nWORKOUT LOGGING")
	desc, err := a.prompt("What workout did you do? (e.g., '30 min run'): ")
	if err != nil || desc == "" {
		fmt.Fprintln(a.out, "No workout entered.")
		return
	}
	if _, err := a.activities.LogActivity(userID, models.ActivityWorkout, desc, nil); err != nil {
		fmt.Fprintf(a.out, "Failed to log workout: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Logged workout: %s\n", desc)
}

func (a *App) logMood(userID uint) {
	fmt.Fprintln(a.out, "\nMOOD LOGGING")
	desc, err := a.prompt("How are you feeling? (e.g., 'energized and focused'): ")
	if err != nil || desc == "" {
		fmt.Fprintln(a.out, "No mood entered.")
		return
	}
	if _, err := a.activities.LogActivity(userID, models.ActivityMood, desc, nil); err != nil {
		fmt.Fprintf(a.out, "Failed to log mood: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Logged mood: %s\n", desc)
}

func (a *App) viewToday(userID uint) {
	line := strings.Repeat("-", 60)
	fmt.Fprintln(a.out, "\nTODAY'S ACTIVITIES")
	fmt.Fprintln(a.out, line)

	activities, err := a.activities.TodayActivities(userID)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load activities: %v\n", err)
		return
	}
	if len(activities) == 0 {
		fmt.Fprintln(a.out, "No activities logged today yet.")
		return
	}

	for _, act := range activities {
		fmt.Fprintf(a.out, "\n[%s] %s\n", act.Timestamp.Format("15:04"), strings.ToUpper(act.Type))
		fmt.Fprintf(a.out, "  %s\n", act.Description)

		if act.NutritionData != "" {
			var n services.MacroSummary
			if err := json.Unmarshal([]byte(act.NutritionData), &n); err == nil {
				fmt.Fprintf(a.out, "  Nutrition: %.1f cal, %.1fg protein\n", n.Calories, n.ProteinG)
			}
		}
	}
	fmt.Fprintln(a.out, line)
}

func (a *App) analyzeNutrition(user *models.User) {
	line := strings.Repeat("-", 60)
	fmt.Fprintln(a.out, "\nNUTRITION ANALYSIS")
	fmt.Fprintln(a.out, line)

	foodLogs, err := a.activities.FoodLogs(user.ID, 1)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load food logs: %v\n", err)
		return
	}
	if len(foodLogs) == 0 {
		fmt.Fprintln(a.out, "No food logged today yet.")
		return
	}

	totals := services.AggregateFoodMacros(foodLogs)
	fmt.Fprintln(a.out, "\nToday's Totals:")
	fmt.Fprintf(a.out, "   Calories: %.1f / %.0f kcal\n", totals.Calories, user.DailyCalGoal)
	fmt.Fprintf(a.out, "   Protein: %.1fg\n", totals.ProteinG)
	fmt.Fprintf(a.out, "   Carbs: %.1fg\n", totals.CarbsG)
	fmt.Fprintf(a.out, "   Fat: %.1fg\n", totals.FatG)

	diff := user.DailyCalGoal - totals.Calories
	switch services.Feedback(totals.Calories, user.DailyCalGoal) {
	case services.FeedbackPlentyLeft:
		fmt.Fprintf(a.out, "\nYou have %.0f calories left for today. Keep it up!\n", diff)
	case services.FeedbackAlmostThere:
		fmt.Fprintf(a.out, "\nAlmost there! %.0f calories to go.\n", diff)
	case services.FeedbackOnTarget:
		fmt.Fprintln(a.out, "\nRight on target! Great job balancing your intake.")
	case services.FeedbackOverBudget:
		fmt.Fprintf(a.out, "\nYou're over by %.0f calories. No worries, tomorrow's a new day!\n", -diff)
	}
	fmt.Fprintln(a.out, line)
}

func (a *App) updateGoals(userID uint) {
	fmt.Fprintln(a.out, "\nUPDATE GOALS")
	newGoals, err := a.prompt("Enter your new goals: ")
	if err != nil || newGoals == "" {
		fmt.Fprintln(a.out, "No goals entered.")
		return
	}
	if err := a.profiles.UpdateGoals(userID, newGoals); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			fmt.Fprintln(a.out, "User not found - double-check that ID.")
			return
		}
		fmt.Fprintf(a.out, "Failed to update goals: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Goals updated - you're evolving, friend!")
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
