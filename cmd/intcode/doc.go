// This file is part of aoc19 - https://github.com/peterall/aoc19
//
// Copyright 2019 The aoc19 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// The intcode command line tool runs, chains, assembles and disassembles
// Intcode programs.
//
// Usage:
//
//	intcode [command]
//
//	Available Commands:
//	  asm         Assemble a program
//	  chain       Run a pipeline of machines
//	  dis         Disassemble a program
//	  help        Help about any command
//	  monitor     Run a program step by step in an interactive monitor
//	  run         Run a program
//
//	Flags:
//	      --config file          load settings from YAML file
//	      --debug                enable debug diagnostics
//	  -h, --help                 help for intcode
//	      --log-level level      log level (debug, info, warn, error or off) (default "warn")
//	      --memory-limit cells   machine memory limit in cells (0 for the default)
//
// --debug: print a full stack trace along with the machine registers should a
// command fail.
//
// --log-level: machine faults are logged at the error level, reads from an
// empty output queue at the warn level and state changes at the debug level.
// Logs are written to stderr.
//
// Configuration files are YAML documents. Flags override values from the file:
//
//	program: day9.txt
//	input: [2]
//	ascii: false
//	log_level: info
//	memory_limit: 100000
//	chain:
//	  phases: [5, 6, 7, 8, 9]
//	  feedback: true
//	  seed: 0
//
// Examples:
//
//	intcode run -i 1 day5.txt
//	intcode run --ascii day25.txt
//	intcode chain --phases 0,1,2,3,4 --best day7.txt
//	intcode chain --phases 5,6,7,8,9 --feedback --best day7.txt
//	intcode asm -o quine.txt quine.asm
//	intcode dis day9.txt
//	intcode monitor day9.txt
package main
