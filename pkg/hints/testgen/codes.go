package testgen

// Hint texts, verbatim as they appear in the test programs.
const (
	codePrintBreakline       = `print('\n')`
	codePrintPass            = `print(f"\tPass!\n\n")`
	codeBitLength140         = `ids.bit_length = 140`
	codeBitLength2500        = `ids.bit_length = 2500`
	codeBitLengthNegativeOne = `ids.bit_length = -1`
	codePrintNs              = `print("N", ids.N, "n", ids.n)`
)

const codeGenerateRandom = `from tools.py.mmr import is_valid_mmr_size
import random
print(f"Testing is_valid_mmr_size against python implementation with {ids.num_sizes} random sizes in [0, 20000000)...")
sizes_to_test = random.sample(range(0, 20000000), ids.num_sizes)
expected_output = [is_valid_mmr_size(size) for size in sizes_to_test]
segments.write_arg(ids.expected_output, expected_output)
segments.write_arg(ids.input_array, sizes_to_test)`

const codeGenerateSequential = `print(f"Testing is_valid_mmr_size by creating the mmr for all sizes in [0, {ids.num_elems})...")
from tools.py.mmr import MMR
mmr = MMR()
valid_mmr_sizes =set()
for i in range(ids.num_elems):
    mmr.add(i)
    valid_mmr_sizes.add(len(mmr.pos_hash))

expected_output = [size in valid_mmr_sizes for size in range(0, len(mmr.pos_hash) + 1)]
segments.write_arg(ids.expected_output, expected_output)
segments.write_arg(ids.input_array, list(range(0, len(mmr.pos_hash) + 1)))`

const codeGenerateSequentialVerbose = `print(f"Testing is_valid_mmr_size by creating the mmr for all sizes in [0, {ids.num_elems})...")
from tools.py.mmr import MMR
mmr = MMR()
valid_mmr_sizes = set()
for i in range(ids.num_elems):
    mmr.add(i)
    valid_mmr_sizes.add(len(mmr.pos_hash))

expected_output = [size in valid_mmr_sizes for size in range(0, len(mmr.pos_hash) + 1)]
for out, inp in zip(expected_output, range(0, len(mmr.pos_hash) + 1)):
    print(out, inp)
segments.write_arg(ids.expected_output, expected_output)
segments.write_arg(ids.input_array, list(range(0, len(mmr.pos_hash) + 1)))`

const codeEncodePacked = `import sha3
import random
from web3 import Web3
def split_128(a):
    """Takes in value, returns uint256-ish tuple."""
    return [a & ((1 << 128) - 1), a >> 128]
def write_uint256_array(ptr, array):
    counter = 0
    for uint in array:
        memory[ptr._reference_value+counter] = uint[0]
        memory[ptr._reference_value+counter+1] = uint[1]
        counter += 2
def generate_n_bit_random(n):
    return random.randint(2**(n-1), 2**n - 1)

# Implementation of solitidy keccak256(encodedPacked(x, y)) in python.
def encode_packed_256_256(x_y):
    return int(Web3.solidityKeccak(["uint256", "uint256"], [x_y[0], x_y[1]]).hex(), 16)
# Another implementation that uses sha3 directly and should be equal. 
def keccak_256_256(x_y):
    k=sha3.keccak_256()
    k.update(x_y[0].to_bytes(32, 'big'))
    k.update(x_y[1].to_bytes(32, 'big'))
    return int.from_bytes(k.digest(), 'big')

# Build Test vector [[x_1, y_1], [x_2, y_2], ..., [x_len, y_len]].

# 256 random pairs of numbers, each pair having two random numbers of 1-256 bits.
x_y_list = [[generate_n_bit_random(random.randint(1, 256)), generate_n_bit_random(random.randint(1, 256))] for _ in range(256)]
# Adds 256 more pairs of equal bit length to the test vector.
x_y_list += [[generate_n_bit_random(i), generate_n_bit_random(i)] for i in range(1,257)]

keccak_output_list = [encode_packed_256_256(x_y) for x_y in x_y_list]
keccak_result_list = [keccak_256_256(x_y) for x_y in x_y_list]

# Sanity check on keccak implementations.
assert all([keccak_output_list[i] == keccak_result_list[i] for i in range(len(keccak_output_list))])


# Prepare x_array and y_array :
x_array_split = [split_128(x_y[0]) for x_y in x_y_list]
y_array_split = [split_128(x_y[1]) for x_y in x_y_list]
# Write x_array : 
write_uint256_array(ids.x_array, x_array_split)
# Write y_array :
write_uint256_array(ids.y_array, y_array_split)

# Prepare keccak_result_array :
keccak_result_list_split = [split_128(keccak_result) for keccak_result in keccak_result_list]
# Write keccak_result_array :
write_uint256_array(ids.keccak_result_array, keccak_result_list_split)

# Write len :
ids.len = len(keccak_result_list)`

const codeConstructMMR = `import random
from tools.py.mmr import get_peaks, MMR, PoseidonHasher, KeccakHasher
STARK_PRIME = 3618502788666131213697322783095070105623107215331596699973092056135872020481

def split_128(a):
    """Takes in value, returns uint256-ish tuple."""
    return [a & ((1 << 128) - 1), a >> 128]
def from_uint256(a):
    """Takes in uint256-ish tuple, returns value."""
    return a[0] + (a[1] << 128)
def write_uint256_array(ptr, array):
    counter = 0
    for uint in array:
        memory[ptr._reference_value+counter] = uint[0]
        memory[ptr._reference_value+counter+1] = uint[1]
        counter += 2

previous_n_values= random.randint(1, 200)
n_values_to_append=random.randint(1, 200)
ids.n_values_to_append=n_values_to_append;

# Initialize random values to be appended to the new MMR.
poseidon_hash_array = [random.randint(0, STARK_PRIME-1) for _ in range(n_values_to_append)]
keccak_hash_array = [split_128(random.randint(0, 2**256-1)) for _ in range(n_values_to_append)]
segments.write_arg(ids.poseidon_hash_array, poseidon_hash_array)
write_uint256_array(ids.keccak_hash_array, keccak_hash_array)


# Initialize MMR objects
mmr_poseidon = MMR(PoseidonHasher())
mmr_keccak = MMR(KeccakHasher())

# Initialize previous values
previous_values_poseidon = [random.randint(0, STARK_PRIME-1) for _ in range(previous_n_values)]
previous_values_keccak = [random.randint(0, 2**256-1) for _ in range(previous_n_values)]

# Fill MMRs with previous values
for elem in previous_values_poseidon:
   _= mmr_poseidon.add(elem)
for elem in previous_values_keccak:
   _= mmr_keccak.add(elem)

# Write the previous MMR size to the Cairo memory.
ids.mmr_offset=len(mmr_poseidon.pos_hash)

# Get the previous peaks and write them to the Cairo memory.
previous_peaks_poseidon = [mmr_poseidon.pos_hash[peak_position] for peak_position in get_peaks(len(mmr_poseidon.pos_hash))]
previous_peaks_keccak = [split_128(mmr_keccak.pos_hash[peak_position]) for peak_position in get_peaks(len(mmr_keccak.pos_hash))]
segments.write_arg(ids.previous_peaks_values_poseidon, previous_peaks_poseidon)
write_uint256_array(ids.previous_peaks_values_keccak, previous_peaks_keccak)

# Write the previous MMR root to the Cairo memory.
ids.mmr_last_root_poseidon = mmr_poseidon.get_root()
ids.mmr_last_root_keccak.low, ids.mmr_last_root_keccak.high = split_128(mmr_keccak.get_root())

# Fill MMRs with new values, in reversed order to match the Cairo code. (construct_mmr() appends the values starting from the last index of the array)
for new_elem in reversed(poseidon_hash_array):
    _= mmr_poseidon.add(new_elem)
for new_elem in reversed(keccak_hash_array):
    _= mmr_keccak.add(from_uint256(new_elem))

# Write the expected new MMR roots and length to the Cairo memory.
ids.expected_new_root_poseidon = mmr_poseidon.get_root()
ids.expected_new_root_keccak.low, ids.expected_new_root_keccak.high = split_128(mmr_keccak.get_root())
ids.expected_new_len = len(mmr_poseidon.pos_hash)`
