package main

import (
	"bufio"
	"fmt"
	"os"

	"othello/engine"
	"othello/game"
	"othello/utils"
)

// playConsole runs a plain stdin/stdout match: the human enters row and
// column numbers for Black, the searcher answers for White.
func playConsole(depth int) error {
	fmt.Println("Starting console Othello. You play X and move first.")

	reader := bufio.NewReader(os.Stdin)
	human := engine.AgentFunc(func(board game.Board, _ game.Side, legal []game.Move) game.Move {
		fmt.Print(board)
		if legal[0].Pass {
			fmt.Println("You have no moves and pass.")
			return game.PassMove
		}
		return promptMove(reader, legal)
	})

	e := engine.New(human, engine.NewSearchAgent(depth))
	for {
		update, done, err := e.Step()
		if err != nil {
			return err
		}
		if done {
			break
		}
		if update.Side == game.White {
			fmt.Printf("Computer plays %s\n", update.Move)
		}
	}

	fmt.Print(e.Board)
	switch outcome := e.Outcome(); outcome.Winner {
	case game.Black:
		fmt.Printf("You win, %d to %d!\n", outcome.Black, outcome.White)
	case game.White:
		fmt.Printf("Computer wins, %d to %d.\n", outcome.White, outcome.Black)
	default:
		fmt.Printf("Tie, %d each.\n", outcome.Black)
	}
	return nil
}

// promptMove reads "row col" pairs until they name a legal placement.
func promptMove(reader *bufio.Reader, legal []game.Move) game.Move {
	for {
		fmt.Print("Your move (row col): ")

		var r, c int
		if _, err := fmt.Fscan(reader, &r, &c); err != nil {
			if _, readErr := reader.ReadString('\n'); readErr != nil {
				fmt.Println("\nGoodbye.")
				os.Exit(0)
			}
			fmt.Println("Enter two numbers between 0 and 7.")
			continue
		}
		reader.ReadString('\n')

		move := game.Place(r, c)
		if r < 0 || r >= game.BoardSize || c < 0 || c >= game.BoardSize ||
			utils.FindIndex(legal, move) < 0 {
			fmt.Println("Not a legal move. Legal moves:", legal)
			continue
		}
		return move
	}
}
