package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/dots-game/internal/config"
	"github.com/rocketscienceinc/dots-game/internal/entity"
	"github.com/rocketscienceinc/dots-game/internal/service"
)

const (
	pageMenu   = "menu"
	pageGame   = "game"
	pageResult = "result"
	pageName   = "name"
)

// App is the terminal host. It drives the gameplay service from keyboard
// input and schedules the bot's reply after a short presentation delay, as
// the engine itself never defers anything.
type App struct {
	logger *slog.Logger
	conf   *config.Config

	app     *tview.Application
	pages   *tview.Pages
	board   *BoardUI
	status  *tview.TextView
	scores  *tview.TextView
	leaders *tview.Table

	gamePlay service.GamePlayService
	game     *entity.Game
	ctx      context.Context
}

func New(logger *slog.Logger, conf *config.Config) *App {
	return &App{
		logger: logger.With("component", "ui"),
		conf:   conf,
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
	}
}

// Run wires the widget tree and blocks until the player quits or the context
// is canceled.
func (that *App) Run(ctx context.Context, gamePlay service.GamePlayService) error {
	that.ctx = ctx
	that.gamePlay = gamePlay

	that.board = NewBoardUI()
	that.status = tview.NewTextView().SetDynamicColors(true)
	that.status.SetBorder(true).SetTitle(" Dots ")
	that.scores = tview.NewTextView().SetDynamicColors(true)
	that.scores.SetBorder(true).SetTitle(" Scores ")
	that.leaders = tview.NewTable()
	that.leaders.SetBorder(true).SetTitle(" Leaderboard ")

	sidebar := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.scores, 4, 0, false).
		AddItem(that.leaders, 5, 0, false).
		AddItem(that.status, 0, 1, false)

	gameFlex := tview.NewFlex().
		AddItem(that.board.Box, 0, 3, true).
		AddItem(sidebar, 30, 1, false)

	that.pages.AddPage(pageGame, gameFlex, true, true)
	that.pages.AddPage(pageMenu, that.buildMenu(), true, true)

	that.app.SetInputCapture(that.handleKey)

	that.refreshLeaderboard()

	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	if err := that.app.SetRoot(that.pages, true).Run(); err != nil {
		return fmt.Errorf("ui stopped: %w", err)
	}

	return nil
}

// RefreshScores satisfies the engine's score sink: it is invoked after every
// capture so the scoreboard never lags the board.
func (that *App) RefreshScores() {
	if that.game == nil {
		return
	}

	that.scores.SetText(fmt.Sprintf("[blue]Blue: %d[-]\n[red]Red: %d[-]",
		that.game.Scores[entity.PlayerBlue], that.game.Scores[entity.PlayerRed]))
}

func (that *App) buildMenu() tview.Primitive {
	menu := tview.NewList().
		AddItem("Player vs Player", "two humans at one keyboard", 'p', func() {
			that.startMatch(entity.ModePVP)
		}).
		AddItem("Player vs Bot (random)", "the bot plays random cells", 'r', func() {
			that.startMatch(entity.ModeBotRandom)
		}).
		AddItem("Player vs Bot (smart)", "the bot hunts your dots", 's', func() {
			that.startMatch(entity.ModeBotSmart)
		}).
		AddItem("Quit", "", 'q', func() {
			that.app.Stop()
		})
	menu.SetBorder(true).SetTitle(" Dots — new game ")

	return center(menu, 44, 12)
}

func (that *App) startMatch(mode string) {
	that.game = that.gamePlay.NewMatch(that.conf.Board.Width, that.conf.Board.Height, mode)
	that.board.SetGame(that.game)
	that.RefreshScores()
	that.setStatus("Blue to move. Arrows move, Enter places,\n'e' ends the match, 'n' starts over.")
	that.pages.SwitchToPage(pageGame)
}

func (that *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	name, _ := that.pages.GetFrontPage()
	if name != pageGame {
		return event
	}

	switch event.Key() {
	case tcell.KeyUp:
		that.board.MoveSelection(0, -1)
	case tcell.KeyDown:
		that.board.MoveSelection(0, 1)
	case tcell.KeyLeft:
		that.board.MoveSelection(-1, 0)
	case tcell.KeyRight:
		that.board.MoveSelection(1, 0)
	case tcell.KeyEnter:
		that.placeAtCursor()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'n':
			that.pages.SwitchToPage(pageMenu)
		case 'e':
			that.finishMatch()
		case 'q':
			that.app.Stop()
		}
	default:
		return event
	}

	return nil
}

func (that *App) placeAtCursor() {
	if that.game == nil || that.game.IsFinished() {
		return
	}
	if that.game.IsWithBot() && that.game.Turn == entity.PlayerRed {
		return
	}

	mover := that.game.Turn
	tile := that.board.SelectedTile()

	ended, err := that.gamePlay.MakeTurn(that.game, tile.X, tile.Y)
	if err != nil {
		// Occupied or out of range: the engine rejected the move and
		// changed nothing, so just wait for better input.
		return
	}

	that.afterMove(mover, ended)

	if !ended && that.game.IsWithBot() && that.game.Turn == entity.PlayerRed {
		that.scheduleBotTurn()
	}
}

// scheduleBotTurn defers the bot's reply so the player's dot is visible
// before the answer lands. The delay is presentation only; the engine's move
// computation is synchronous.
func (that *App) scheduleBotTurn() {
	delay := time.Duration(that.conf.BotDelayMS) * time.Millisecond

	time.AfterFunc(delay, func() {
		that.app.QueueUpdateDraw(func() {
			that.makeBotTurn()
		})
	})
}

func (that *App) makeBotTurn() {
	if that.game == nil || that.game.IsFinished() {
		return
	}

	move, err := that.gamePlay.MakeBotTurn(that.game)
	if err != nil {
		that.logger.Error("bot turn failed", "error", err)
		return
	}

	if move == nil {
		if that.game.IsFinished() {
			// The bot's placement filled the board.
			that.finishMatch()
		} else {
			that.setStatus("Red passes.")
		}
		return
	}

	that.afterMove(entity.PlayerRed, false)
}

func (that *App) afterMove(mover string, ended bool) {
	that.RefreshScores()

	if ended {
		that.finishMatch()
		return
	}

	if that.game.LastCaptured > 0 {
		that.setStatus(fmt.Sprintf("%s captured %d dots!", displayName(mover), that.game.LastCaptured))
	} else {
		that.setStatus(fmt.Sprintf("%s to move.", displayName(that.game.Turn)))
	}
}

func (that *App) finishMatch() {
	if that.game == nil {
		return
	}

	result, err := that.gamePlay.EndMatch(that.ctx, that.game)
	if err != nil {
		that.logger.Error("failed to finalize match", "error", err)
	}

	message := fmt.Sprintf("Game over!\nBlue %d — Red %d", result.BlueScore, result.RedScore)
	if result.Winner == entity.WinnerDraw {
		message += "\nIt's a draw."
	} else {
		message += fmt.Sprintf("\n%s wins!", displayName(result.Winner))
	}

	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			that.pages.RemovePage(pageResult)
			if result.Winner != entity.WinnerDraw {
				that.promptWinnerName(result.WinningScore())
			}
		})

	that.pages.AddPage(pageResult, modal, true, true)
}

// promptWinnerName asks the winner for a name and offers the score to the
// ranked list; the score may still be turned away when the table is full of
// better results.
func (that *App) promptWinnerName(score int) {
	input := tview.NewInputField().SetLabel("Your name: ").SetFieldWidth(24)

	form := tview.NewForm().
		AddFormItem(input).
		AddButton("Save", func() {
			name := input.GetText()
			if name == "" {
				return
			}

			accepted, err := that.gamePlay.RecordScore(that.ctx, name, score)
			if err != nil {
				that.logger.Error("failed to record score", "error", err)
			} else if accepted {
				that.setStatus("You made the leaderboard!")
				that.refreshLeaderboard()
			} else {
				that.setStatus("Not enough for the top 3 this time.")
			}

			that.pages.RemovePage(pageName)
		}).
		AddButton("Skip", func() {
			that.pages.RemovePage(pageName)
		})
	form.SetBorder(true).SetTitle(fmt.Sprintf(" %d points! ", score))

	that.pages.AddPage(pageName, center(form, 44, 9), true, true)
}

func (that *App) refreshLeaderboard() {
	entries, err := that.gamePlay.Leaderboard(that.ctx)
	if err != nil {
		that.logger.Error("failed to load leaderboard", "error", err)
		return
	}

	that.leaders.Clear()
	for row, entry := range entries {
		that.leaders.SetCellSimple(row, 0, fmt.Sprintf("%d.", entry.Place))
		that.leaders.SetCellSimple(row, 1, entry.Name)
		that.leaders.SetCellSimple(row, 2, fmt.Sprintf("%d", entry.Score))
	}
}

func (that *App) setStatus(text string) {
	that.status.SetText(text)
}

func displayName(mark string) string {
	if mark == entity.PlayerBlue {
		return "Blue"
	}
	return "Red"
}

// center wraps a primitive so it floats in the middle of the screen.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
