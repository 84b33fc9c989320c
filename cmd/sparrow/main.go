package main

import (
	"bufio"
	"log"
	"os"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetPrefix("info string ")
	log.SetFlags(log.Lshortfile)

	bio := bufio.NewReader(os.Stdin)
	uci := NewUCI()
	for {
		line, _, err := bio.ReadLine()
		if err != nil {
			log.Println("error:", err)
			break
		}
		if err := uci.Execute(string(line)); err != nil {
			if err != errQuit {
				log.Println("for line:", string(line))
				log.Println("error:", err)
			} else {
				break
			}
		}
	}
}
